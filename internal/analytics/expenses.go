package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
)

type CategoryTotal struct {
	Category models.ExpenseCategory
	Total    float64
	Percent  float64
}

// Breakdown holds one entry per effective category, zero totals included.
type Breakdown []CategoryTotal

// NonZero returns the entries worth displaying.
func (b Breakdown) NonZero() Breakdown {
	out := make(Breakdown, 0, len(b))
	for _, c := range b {
		if c.Total != 0 {
			out = append(out, c)
		}
	}
	return out
}

type ExpenseSummary struct {
	Total     float64
	Count     int
	Breakdown Breakdown
}

// ExpenseStats totals in-window expenses. Expenses whose category is not in
// categories still count toward Total but appear in no breakdown entry.
func ExpenseStats(expenses []models.Expense, categories []models.ExpenseCategory, p Period, now time.Time) ExpenseSummary {
	start := WindowStart(p, now)

	var s ExpenseSummary
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		if !inWindow(e.Date, start, now) {
			continue
		}
		s.Total += e.Amount
		s.Count++
		byCategory[e.Category] += e.Amount
	}

	s.Breakdown = make(Breakdown, 0, len(categories))
	for _, c := range categories {
		total := byCategory[c.ID]
		pct := 0.0
		if s.Total != 0 {
			pct = total * 100 / s.Total
		}
		s.Breakdown = append(s.Breakdown, CategoryTotal{Category: c, Total: total, Percent: pct})
	}

	sort.SliceStable(s.Breakdown, func(i, j int) bool {
		return s.Breakdown[i].Total > s.Breakdown[j].Total
	})
	return s
}
