package storage

import (
	"encoding/json"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// CollectionReport describes the raw stored state of one collection.
type CollectionReport struct {
	Collection string
	Key        string
	Present    bool
	Bytes      int
	DecodeErr  error
	ReadErr    error
}

// Healthy reports whether the collection can be read as stored.
func (r CollectionReport) Healthy() bool {
	return r.ReadErr == nil && r.DecodeErr == nil
}

// Collections lists every collection key suffix in display order.
func Collections() []string {
	return []string{
		constants.KeyTodos,
		constants.KeyHabits,
		constants.KeyHabitConfig,
		constants.KeyExpenses,
		constants.KeyCustomCategories,
	}
}

// Inspect reads each collection without falling back to defaults, so
// callers can see which keys are missing or corrupt.
func (s *Store) Inspect() []CollectionReport {
	reports := make([]CollectionReport, 0, len(Collections()))
	for _, c := range Collections() {
		r := CollectionReport{Collection: c, Key: s.Key(c)}
		if !s.Available() {
			r.ReadErr = ErrUnavailable
			reports = append(reports, r)
			continue
		}

		raw, ok, err := s.medium.GetItem(r.Key)
		if err != nil {
			r.ReadErr = err
		} else if ok && !isEmpty(raw) {
			r.Present = true
			r.Bytes = len(raw)
			r.DecodeErr = decodeCollection(c, raw)
		}
		reports = append(reports, r)
	}
	return reports
}

func decodeCollection(collection, raw string) error {
	var target interface{}
	switch collection {
	case constants.KeyTodos:
		target = &[]models.Task{}
	case constants.KeyHabits:
		target = &models.HabitLog{}
	case constants.KeyHabitConfig:
		target = &[]models.HabitConfig{}
	case constants.KeyExpenses:
		target = &[]models.Expense{}
	case constants.KeyCustomCategories:
		target = &[]models.ExpenseCategory{}
	default:
		target = new(json.RawMessage)
	}
	return json.Unmarshal([]byte(raw), target)
}
