package tasks

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/analytics"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

type TaskAddCmd struct {
	Text     string `arg:"" help:"Task description."`
	Priority string `help:"Priority (low, medium, high)." enum:"low,medium,high" default:"low"`
	Due      string `help:"Due date (YYYY-MM-DD)." default:""`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	priority, err := models.ParsePriority(c.Priority)
	if err != nil {
		return err
	}

	task, err := ctx.Tracker.AddTask(c.Text, priority, c.Due)
	if err != nil {
		return err
	}

	ctx.Printf("Added task %d: %s\n", task.ID, task.Text)
	return nil
}

type TaskListCmd struct {
	Open bool `help:"Only show incomplete tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Tracker.Tasks()
	now := ctx.Tracker.Now()

	shown := 0
	for _, t := range tasks {
		if c.Open && t.Completed {
			continue
		}
		line := fmt.Sprintf("%s %d  %s %s", cli.Check(t.Completed), t.ID, cli.PriorityBadge(t.Priority), t.Text)
		if t.DueDate != "" {
			line += cli.Muted(" due " + t.DueDate)
		}
		line += cli.Muted(" (" + cli.Ago(t.CreatedAt, now) + ")")
		ctx.Println(line)
		shown++
	}

	if shown == 0 {
		ctx.Println("No tasks found.")
	}
	return nil
}

type TaskDoneCmd struct {
	ID int64 `arg:"" help:"Task ID."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Tracker.ToggleTask(c.ID)
	if err != nil {
		return err
	}

	if task.Completed {
		ctx.Printf("Completed: %s\n", task.Text)
	} else {
		ctx.Printf("Reopened: %s\n", task.Text)
	}
	return nil
}

type TaskEditCmd struct {
	ID       int64  `arg:"" help:"Task ID."`
	Text     string `help:"New description."`
	Priority string `help:"New priority (low, medium, high)."`
	Due      string `help:"New due date (YYYY-MM-DD)."`
	ClearDue bool   `help:"Remove the due date."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	var upd tracker.TaskUpdate
	if c.Text != "" {
		upd.Text = &c.Text
	}
	if c.Priority != "" {
		p, err := models.ParsePriority(c.Priority)
		if err != nil {
			return err
		}
		upd.Priority = &p
	}
	if c.ClearDue {
		empty := ""
		upd.DueDate = &empty
	} else if c.Due != "" {
		upd.DueDate = &c.Due
	}

	task, err := ctx.Tracker.EditTask(c.ID, upd)
	if err != nil {
		return err
	}

	ctx.Printf("Updated task %d: %s\n", task.ID, task.Text)
	return nil
}

type TaskDeleteCmd struct {
	ID int64 `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.DeleteTask(c.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted task %d\n", c.ID)
	return nil
}

type TaskStatsCmd struct {
	Period string `help:"Window (day, week, month)." enum:"day,week,month" default:"week"`
}

func (c *TaskStatsCmd) Run(ctx *cli.Context) error {
	period, err := analytics.ParsePeriod(c.Period)
	if err != nil {
		return err
	}
	s := ctx.Tracker.TaskStats(period)

	ctx.Println(cli.Header(fmt.Sprintf("Tasks this %s", period)))
	ctx.Printf("Completion rate  %s %d%%\n", cli.Bar(float64(s.CompletionRate), ""), s.CompletionRate)
	ctx.Printf("Completed        %d\n", s.CompletedCount)
	ctx.Printf("High priority    %d open\n", s.HighPriorityOpen)
	ctx.Printf("Overdue          %d\n", s.Overdue)

	if len(s.Completed) > 0 {
		ctx.Println()
		now := ctx.Tracker.Now()
		for _, t := range s.Completed {
			ctx.Printf("  %s %s %s\n", cli.Check(true), t.Text, cli.Muted(cli.Ago(*t.CompletedAt, now)))
		}
	}
	return nil
}
