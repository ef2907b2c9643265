package storage

import (
	"encoding/json"
	"strings"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
)

// Store maps the five collections onto namespaced keys of a Medium.
// A nil medium behaves as storage that is unavailable: reads return
// defaults and writes are dropped.
//
// Concurrency note:
//   - Every set writes the whole collection. Two processes sharing the same
//     medium race with last-write-wins semantics; nothing is merged.
type Store struct {
	medium Medium
	prefix string
}

var _ Provider = (*Store)(nil)

// NewStore creates a store over medium using the application key prefix.
func NewStore(medium Medium) *Store {
	return &Store{
		medium: medium,
		prefix: constants.KeyPrefix,
	}
}

// Key returns the namespaced storage key for a collection.
func (s *Store) Key(collection string) string {
	return s.prefix + collection
}

// Available reports whether the store has a backing medium.
func (s *Store) Available() bool {
	return s != nil && s.medium != nil
}

func (s *Store) GetTodos() []models.Task {
	return getData(s, constants.KeyTodos, func() []models.Task { return []models.Task{} })
}

func (s *Store) SetTodos(todos []models.Task) {
	setData(s, constants.KeyTodos, todos)
}

func (s *Store) GetHabits() models.HabitLog {
	return getData(s, constants.KeyHabits, func() models.HabitLog { return models.HabitLog{} })
}

func (s *Store) SetHabits(log models.HabitLog) {
	setData(s, constants.KeyHabits, log)
}

func (s *Store) GetHabitConfig() []models.HabitConfig {
	return getData(s, constants.KeyHabitConfig, models.DefaultHabitConfig)
}

func (s *Store) SetHabitConfig(cfg []models.HabitConfig) {
	setData(s, constants.KeyHabitConfig, cfg)
}

func (s *Store) GetExpenses() []models.Expense {
	return getData(s, constants.KeyExpenses, func() []models.Expense { return []models.Expense{} })
}

func (s *Store) SetExpenses(expenses []models.Expense) {
	setData(s, constants.KeyExpenses, expenses)
}

func (s *Store) GetCustomCategories() []models.ExpenseCategory {
	return getData(s, constants.KeyCustomCategories, func() []models.ExpenseCategory { return []models.ExpenseCategory{} })
}

func (s *Store) SetCustomCategories(cats []models.ExpenseCategory) {
	setData(s, constants.KeyCustomCategories, cats)
}

// getData reads and decodes a collection, falling back to def() when the
// medium is missing, the read fails, nothing is stored, or decoding fails.
func getData[T any](s *Store, collection string, def func() T) T {
	if !s.Available() {
		return def()
	}

	key := s.Key(collection)
	raw, ok, err := s.medium.GetItem(key)
	if err != nil {
		logger.Warn("Error reading from storage", "key", key, "error", err)
		return def()
	}
	if !ok || isEmpty(raw) {
		return def()
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Warn("Error decoding stored value, using default", "key", key, "error", err)
		return def()
	}
	return value
}

// setData encodes and writes a collection. Failures are logged, never returned.
func setData[T any](s *Store, collection string, value T) {
	if !s.Available() {
		logger.Debug("Storage unavailable, dropping write", "collection", collection)
		return
	}

	key := s.Key(collection)
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("Error encoding value for storage", "key", key, "error", err)
		return
	}
	if err := s.medium.SetItem(key, string(data)); err != nil {
		logger.Error("Error writing to storage", "key", key, "error", err)
	}
}

func isEmpty(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == "null"
}
