package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type TaskSummary struct {
	CompletedCount int
	// Completed tasks in the window, most recently completed first.
	Completed []models.Task
	// CompletionRate is computed over every task, not just the window.
	CompletionRate   int
	HighPriorityOpen int
	Overdue          int
}

func TaskStats(tasks []models.Task, p Period, now time.Time) TaskSummary {
	start := WindowStart(p, now)
	today := utils.StartOfDay(now)

	var s TaskSummary
	total := 0
	for _, t := range tasks {
		if t.Completed {
			total++
			if t.CompletedAt != nil && inWindow(*t.CompletedAt, start, now) {
				s.Completed = append(s.Completed, t)
			}
			continue
		}

		if t.Priority == models.PriorityHigh {
			s.HighPriorityOpen++
		}
		if isOverdue(t, today) {
			s.Overdue++
		}
	}

	sort.SliceStable(s.Completed, func(i, j int) bool {
		return s.Completed[i].CompletedAt.After(*s.Completed[j].CompletedAt)
	})
	s.CompletedCount = len(s.Completed)
	s.CompletionRate = percent(total, len(tasks))
	return s
}

// isOverdue reports whether an open task's due date is before today.
// Unparseable due dates never count.
func isOverdue(t models.Task, today time.Time) bool {
	if t.DueDate == "" {
		return false
	}
	due, err := time.ParseInLocation(constants.DateFormat, t.DueDate, today.Location())
	if err != nil {
		return false
	}
	return due.Before(today)
}
