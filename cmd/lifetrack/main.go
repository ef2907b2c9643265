package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/cli/backups"
	"github.com/julianstephens/lifetrack/internal/cli/categories"
	"github.com/julianstephens/lifetrack/internal/cli/expenses"
	"github.com/julianstephens/lifetrack/internal/cli/habits"
	"github.com/julianstephens/lifetrack/internal/cli/system"
	"github.com/julianstephens/lifetrack/internal/cli/tasks"
	"github.com/julianstephens/lifetrack/internal/constants"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database path. Use a .json path for a plain JSON file or :memory: for a throwaway session." env:"LIFETRACK_DB" default:"${db}"`
	Debug   bool   `help:"Log to stderr at debug level." env:"LIFETRACK_DEBUG"`
	TZ      string `help:"IANA timezone used for day boundaries." env:"LIFETRACK_TZ" default:"Local"`

	Init   system.InitCmd   `cmd:"" help:"Initialize lifetrack storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Task   struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks, newest first." default:"1"`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Toggle a task's completion."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		Stats  tasks.TaskStatsCmd  `cmd:"" help:"Show completion statistics."`
	} `cmd:"" help:"Manage tasks."`
	Habit    habits.HabitCmd        `cmd:"" help:"Manage habits and habit tracking."`
	Expense  expenses.ExpenseCmd    `cmd:"" help:"Manage expenses."`
	Category categories.CategoryCmd `cmd:"" help:"Manage expense categories."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	// A missing .env is normal
	envErr := godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track tasks, habits and expenses from the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version": constants.Version,
			"db":      constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: cli.DataDir(CLI.DB)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	if envErr != nil {
		logger.Debug("No .env loaded", "error", envErr)
	}

	loc, err := utils.LoadLocation(CLI.TZ)
	if err != nil {
		apperrors.Fatal(fmt.Errorf("invalid timezone %q: %w", CLI.TZ, err))
	}

	// Without a medium the store serves defaults and drops writes
	medium, err := cli.OpenMedium(CLI.DB)
	if err != nil {
		logger.Error("Storage unavailable, changes will not be saved", "db", CLI.DB, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: storage unavailable (%v); changes will not be saved\n", err)
	}

	appCtx := cli.NewContext(medium, cli.ExpandPath(CLI.DB))
	appCtx.UseLocation(loc)

	err = ctx.Run(appCtx)
	if medium != nil {
		if closeErr := medium.Close(); closeErr != nil {
			logger.Warn("Failed to close storage", "error", closeErr)
		}
	}
	os.Exit(apperrors.Report(os.Stderr, err))
}
