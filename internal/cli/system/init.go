package system

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if ctx.Medium == nil {
		return fmt.Errorf("no storage medium available for %s", ctx.DBPath)
	}

	if initer, ok := ctx.Medium.(cli.Initializer); ok {
		if err := initer.Init(); err != nil {
			return err
		}
	}

	ctx.Printf("Initialized lifetrack storage at: %s\n", ctx.DBPath)
	return nil
}
