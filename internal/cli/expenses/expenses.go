package expenses

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/analytics"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

type ExpenseCmd struct {
	Add    ExpenseAddCmd    `cmd:"" help:"Record an expense."`
	Edit   ExpenseEditCmd   `cmd:"" help:"Change an expense's amount or category."`
	Delete ExpenseDeleteCmd `cmd:"" help:"Delete an expense."`
	List   ExpenseListCmd   `cmd:"" help:"List expenses." default:"1"`
	Stats  ExpenseStatsCmd  `cmd:"" help:"Show spending by category."`
}

type ExpenseAddCmd struct {
	Amount   string `arg:"" help:"Amount, e.g. 12.50 or 12,50. A comma is a decimal separator; write 1000 not 1,000."`
	Category string `short:"c" help:"Category ID." default:"food"`
}

func (c *ExpenseAddCmd) Run(ctx *cli.Context) error {
	e, err := ctx.Tracker.AddExpense(c.Amount, c.Category)
	if err != nil {
		return err
	}
	ctx.Printf("Added expense %d: %s in %s\n", e.ID, cli.FormatAmount(e.Amount), categoryLabel(ctx, e.Category))
	return nil
}

type ExpenseEditCmd struct {
	ID       int64  `arg:"" help:"Expense ID."`
	Amount   string `arg:"" help:"New amount, with a dot or comma decimal separator."`
	Category string `short:"c" help:"New category ID (default: unchanged)."`
}

func (c *ExpenseEditCmd) Run(ctx *cli.Context) error {
	category := c.Category
	if category == "" {
		current, ok := findExpense(ctx.Tracker.Expenses(), c.ID)
		if !ok {
			return fmt.Errorf("%w: %d", tracker.ErrExpenseNotFound, c.ID)
		}
		category = current.Category
	}

	e, err := ctx.Tracker.EditExpense(c.ID, c.Amount, category)
	if err != nil {
		return err
	}
	ctx.Printf("Updated expense %d: %s in %s\n", e.ID, cli.FormatAmount(e.Amount), categoryLabel(ctx, e.Category))
	return nil
}

type ExpenseDeleteCmd struct {
	ID int64 `arg:"" help:"Expense ID."`
}

func (c *ExpenseDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.DeleteExpense(c.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted expense %d\n", c.ID)
	return nil
}

type ExpenseListCmd struct {
	Period string `help:"Only show expenses in this window (day, week, month)." enum:"day,week,month,all" default:"all"`
}

func (c *ExpenseListCmd) Run(ctx *cli.Context) error {
	now := ctx.Tracker.Now()
	expenses := ctx.Tracker.Expenses()

	shown := 0
	for _, e := range expenses {
		if c.Period != "all" && c.Period != "" {
			p, err := analytics.ParsePeriod(c.Period)
			if err != nil {
				return err
			}
			if e.Date.Before(analytics.WindowStart(p, now)) {
				continue
			}
		}
		ctx.Printf("%d  %10s  %-14s %s\n", e.ID, cli.FormatAmount(e.Amount), categoryLabel(ctx, e.Category), cli.Muted(cli.Ago(e.Date, now)))
		shown++
	}

	if shown == 0 {
		ctx.Println("No expenses found.")
	}
	return nil
}

type ExpenseStatsCmd struct {
	Period string `help:"Window (day, week, month)." enum:"day,week,month" default:"week"`
}

func (c *ExpenseStatsCmd) Run(ctx *cli.Context) error {
	period, err := analytics.ParsePeriod(c.Period)
	if err != nil {
		return err
	}
	s := ctx.Tracker.ExpenseStats(period)

	ctx.Println(cli.Header(fmt.Sprintf("Spending this %s", period)))
	ctx.Printf("Total: %s (%d expenses)\n\n", cli.FormatAmount(s.Total), s.Count)

	entries := s.Breakdown.NonZero()
	if len(entries) == 0 {
		ctx.Println("No spending in this period.")
		return nil
	}
	for _, b := range entries {
		ctx.Printf("%-14s %s %10s %6s\n", b.Category.Label, cli.Bar(b.Percent, b.Category.Color), cli.FormatAmount(b.Total), cli.FormatPercent(b.Percent))
	}
	return nil
}

func categoryLabel(ctx *cli.Context, id string) string {
	if c, ok := models.FindCategory(ctx.Tracker.Categories(), id); ok {
		return c.Label
	}
	return id
}

func findExpense(expenses []models.Expense, id int64) (models.Expense, bool) {
	for _, e := range expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}
