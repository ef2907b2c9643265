// Package tracker implements the mutations a user performs on the stored
// collections. Every operation reads the whole collection, changes it in
// memory and writes it back through the store.
package tracker

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/analytics"
	"github.com/julianstephens/lifetrack/internal/ids"
	"github.com/julianstephens/lifetrack/internal/storage"
)

type Service struct {
	store storage.Provider
	ids   *ids.Generator
	now   func() time.Time
}

// New creates a service over store. A nil clock means time.Now.
func New(store storage.Provider, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store: store,
		ids:   ids.New(now),
		now:   now,
	}
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) TaskStats(p analytics.Period) analytics.TaskSummary {
	return analytics.TaskStats(s.Tasks(), p, s.now())
}

func (s *Service) HabitStats(p analytics.Period) (analytics.HabitSummary, error) {
	return analytics.HabitStats(s.Habits(), s.HabitLog(), p, s.now())
}

func (s *Service) ExpenseStats(p analytics.Period) analytics.ExpenseSummary {
	return analytics.ExpenseStats(s.Expenses(), s.Categories(), p, s.now())
}
