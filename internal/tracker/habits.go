package tracker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/analytics"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/icons"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/utils"
)

// Habits returns the habit config after healing any generic icons.
func (s *Service) Habits() []models.HabitConfig {
	return analytics.LoadHabitConfig(s.store)
}

func (s *Service) HabitLog() models.HabitLog {
	return s.store.GetHabits()
}

// AddHabit appends a habit with an icon inferred from its label.
func (s *Service) AddHabit(label string) (models.HabitConfig, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.HabitConfig{}, ErrEmptyName
	}

	cfg := s.Habits()
	h := models.HabitConfig{
		ID:    s.ids.NextString(constants.HabitIDPrefix, habitIDs(cfg)),
		Label: label,
		Icon:  icons.InferHabit(label),
	}

	s.store.SetHabitConfig(append(cfg, h))
	return h, nil
}

// RenameHabit changes a habit's label and re-infers its icon, keeping its
// position and id.
func (s *Service) RenameHabit(id, label string) (models.HabitConfig, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.HabitConfig{}, ErrEmptyName
	}

	cfg := s.Habits()
	i := findHabit(cfg, id)
	if i < 0 {
		return models.HabitConfig{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	cfg[i].Label = label
	cfg[i].Icon = icons.InferHabit(label)

	s.store.SetHabitConfig(cfg)
	return cfg[i], nil
}

// DeleteHabit removes a habit from the config. Its log entries are kept.
func (s *Service) DeleteHabit(id string) error {
	cfg := s.Habits()
	i := findHabit(cfg, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	s.store.SetHabitConfig(append(cfg[:i:i], cfg[i+1:]...))
	return nil
}

// ToggleHabit flips the completion of habit id on day and returns the new state.
func (s *Service) ToggleHabit(id string, day time.Time) (bool, error) {
	if findHabit(s.Habits(), id) < 0 {
		return false, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	log := s.store.GetHabits()
	key := utils.DateKey(day)
	done := !log.Done(key, id)
	log.Set(key, id, done)

	s.store.SetHabits(log)
	return done, nil
}

// OrphanedHabitIDs lists, sorted, the habit ids present in the log but
// missing from the config.
func (s *Service) OrphanedHabitIDs() []string {
	known := make(map[string]bool)
	for _, h := range s.Habits() {
		known[h.ID] = true
	}

	orphans := make(map[string]bool)
	for _, entries := range s.store.GetHabits() {
		for id := range entries {
			if !known[id] {
				orphans[id] = true
			}
		}
	}

	out := make([]string, 0, len(orphans))
	for id := range orphans {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func findHabit(cfg []models.HabitConfig, id string) int {
	for i, h := range cfg {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func habitIDs(cfg []models.HabitConfig) []string {
	out := make([]string, len(cfg))
	for i, h := range cfg {
		out[i] = h.ID
	}
	return out
}
