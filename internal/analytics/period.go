// Package analytics derives time-windowed aggregates from the stored
// collections. Everything here is a pure function of its inputs except
// LoadHabitConfig, which may write the healed config back.
package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	case "":
		return PeriodWeek, nil
	default:
		return "", fmt.Errorf("invalid period %q (must be day, week, or month)", s)
	}
}

// WindowStart returns the inclusive lower bound of the task and expense
// window ending at now. The week is a rolling 168 hours, not a calendar week.
func WindowStart(p Period, now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return utils.StartOfDay(now)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return now.Add(-7 * 24 * time.Hour)
	}
}

// WindowDays returns the number of trailing calendar days, today included,
// that a habit window spans.
func WindowDays(p Period) (int, error) {
	switch p {
	case PeriodWeek:
		return constants.HabitWeekDays, nil
	case PeriodMonth:
		return constants.HabitMonthDays, nil
	default:
		return 0, fmt.Errorf("period %q is not supported for habits (use week or month)", p)
	}
}

func inWindow(t, start, now time.Time) bool {
	return !t.Before(start) && !t.After(now)
}

// percent returns round(100*n/d), or 0 when d is 0.
func percent(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(float64(n)*100/float64(d) + 0.5)
}
