package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type HabitScore struct {
	Habit         models.HabitConfig
	CompletedDays int
	Score         int
}

type HabitSummary struct {
	// Scores are ordered by score, highest first. Ties keep config order.
	Scores             []HabitScore
	OverallConsistency int
	WindowDays         int
}

func HabitStats(cfg []models.HabitConfig, log models.HabitLog, p Period, now time.Time) (HabitSummary, error) {
	n, err := WindowDays(p)
	if err != nil {
		return HabitSummary{}, err
	}
	days := utils.LastNDays(now, n)

	s := HabitSummary{Scores: make([]HabitScore, 0, len(cfg)), WindowDays: n}
	sum := 0
	for _, h := range cfg {
		done := 0
		for _, d := range days {
			if log.Done(d, h.ID) {
				done++
			}
		}
		score := percent(done, n)
		sum += score
		s.Scores = append(s.Scores, HabitScore{Habit: h, CompletedDays: done, Score: score})
	}

	sort.SliceStable(s.Scores, func(i, j int) bool {
		return s.Scores[i].Score > s.Scores[j].Score
	})
	s.OverallConsistency = percent(sum, 100*len(cfg))
	return s, nil
}
