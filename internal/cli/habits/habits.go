package habits

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/analytics"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type HabitCmd struct {
	List   HabitListCmd   `cmd:"" help:"Show habits and today's status." default:"1"`
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	Rename HabitRenameCmd `cmd:"" help:"Rename a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit (its history is kept)."`
	Mark   HabitMarkCmd   `cmd:"" help:"Toggle a habit for a day."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show consistency scores."`
}

type HabitListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	day, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}

	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		ctx.Println("No habits configured.")
		return nil
	}

	log := ctx.Tracker.HabitLog()
	key := utils.DateKey(day)
	ctx.Println(cli.Header("Habits for " + key))
	for _, h := range habits {
		ctx.Printf("%s %-24s %s\n", cli.Check(log.Done(key, h.ID)), h.Label, cli.Muted(fmt.Sprintf("%s · %s", h.ID, h.Icon)))
	}
	return nil
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Tracker.AddHabit(c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Added habit %s: %s (%s)\n", h.ID, h.Label, h.Icon)
	return nil
}

type HabitRenameCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Name string `arg:"" help:"New name."`
}

func (c *HabitRenameCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Tracker.RenameHabit(c.ID, c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Renamed habit %s: %s (%s)\n", h.ID, h.Label, h.Icon)
	return nil
}

type HabitDeleteCmd struct {
	ID  string `arg:"" help:"Habit ID."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.Ask(fmt.Sprintf("Delete habit %s?", c.ID), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}

	if err := ctx.Tracker.DeleteHabit(c.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted habit %s\n", c.ID)
	return nil
}

type HabitMarkCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	day, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}

	done, err := ctx.Tracker.ToggleHabit(c.ID, day)
	if err != nil {
		return err
	}

	state := "not done"
	if done {
		state = "done"
	}
	ctx.Printf("Marked %s as %s for %s\n", c.ID, state, utils.DateKey(day))
	return nil
}

type HabitStatsCmd struct {
	Period string `help:"Window (week, month)." enum:"week,month" default:"week"`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	period, err := analytics.ParsePeriod(c.Period)
	if err != nil {
		return err
	}
	s, err := ctx.Tracker.HabitStats(period)
	if err != nil {
		return err
	}

	ctx.Println(cli.Header(fmt.Sprintf("Consistency over the last %d days", s.WindowDays)))
	for _, h := range s.Scores {
		ctx.Printf("%-24s %s %3d%%\n", h.Habit.Label, cli.Bar(float64(h.Score), ""), h.Score)
	}
	ctx.Printf("\nOverall consistency: %d%%\n", s.OverallConsistency)
	return nil
}

func resolveDay(ctx *cli.Context, date string) (time.Time, error) {
	now := ctx.Tracker.Now()
	if date == "" {
		return now, nil
	}
	day, err := utils.ParseDateInLocation(date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return day, nil
}
