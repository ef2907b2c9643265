package categories

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/cli"
)

type CategoryCmd struct {
	List   CategoryListCmd   `cmd:"" help:"List expense categories." default:"1"`
	Add    CategoryAddCmd    `cmd:"" help:"Add a custom category."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a custom category."`
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	for _, cat := range ctx.Tracker.Categories() {
		kind := "built-in"
		if cat.IsCustom {
			kind = "custom"
		}
		ctx.Printf("%-22s %-14s %s\n", cat.ID, cat.Label, cli.Muted(fmt.Sprintf("%s · %s", cat.Icon, kind)))
	}
	return nil
}

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Tracker.AddCategory(c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Added category %s: %s (%s)\n", cat.ID, cat.Label, cat.Icon)
	return nil
}

type CategoryDeleteCmd struct {
	ID  string `arg:"" help:"Category ID."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *CategoryDeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.Ask(fmt.Sprintf("Delete category %s? Its expenses are kept.", c.ID), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}

	if err := ctx.Tracker.DeleteCategory(c.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted category %s\n", c.ID)
	return nil
}
