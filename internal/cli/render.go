package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/lifetrack/internal/models"
)

const barWidth = 20

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DEF254"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#30D158"))

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93")),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9F0A")),
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF453A")).Bold(true),
	}
)

func Header(title string) string {
	return headerStyle.Render(title)
}

func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Bar renders a horizontal bar filled to pct percent. color is a hex
// string and may be empty.
func Bar(pct float64, color string) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct*barWidth/100 + 0.5)

	style := doneStyle
	if color != "" {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return style.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
}

func PriorityBadge(p models.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		style = priorityStyles[models.PriorityLow]
	}
	return style.Render(fmt.Sprintf("[%s]", p))
}

func Check(done bool) string {
	if done {
		return doneStyle.Render("✓")
	}
	return mutedStyle.Render("·")
}

// FormatAmount renders an amount with thousands separators and two decimals.
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Ago renders t relative to now, e.g. "3 hours ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
