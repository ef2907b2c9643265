package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/lifetrack/internal/backup"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false

	if !ctx.Store.Available() {
		ctx.Printf("❌ Storage available: FAIL\n")
		ctx.Printf("   Error: no medium could be opened for %s\n", ctx.DBPath)
		ctx.Println()
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Printf("✓ Storage available: OK (%s)\n", ctx.DBPath)

	if m, ok := ctx.Medium.(*sqlite.Medium); ok {
		if err := checkSchemaVersion(m); err != nil {
			ctx.Printf("❌ Schema version: FAIL\n")
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			ctx.Printf("✓ Schema version: OK\n")
		}

		if err := checkBackupsPresent(m); err != nil {
			ctx.Printf("⚠ Backups present: WARNING\n")
			ctx.Printf("   %v\n", err)
		} else {
			ctx.Printf("✓ Backups present: OK\n")
		}
	}

	for _, r := range ctx.Store.Inspect() {
		name := strings.ReplaceAll(r.Collection, "-", " ")
		switch {
		case r.ReadErr != nil:
			ctx.Printf("❌ Collection %s: FAIL\n", name)
			ctx.Printf("   Error: %v\n", r.ReadErr)
			hasError = true
		case r.DecodeErr != nil:
			ctx.Printf("❌ Collection %s: FAIL (reads fall back to defaults)\n", name)
			ctx.Printf("   Error: %v\n", r.DecodeErr)
			hasError = true
		case !r.Present:
			ctx.Printf("✓ Collection %s: OK (empty)\n", name)
		default:
			ctx.Printf("✓ Collection %s: OK (%s)\n", name, humanize.Bytes(uint64(r.Bytes)))
		}
	}

	// Orphaned log entries are expected after deleting a habit
	if orphans := ctx.Tracker.OrphanedHabitIDs(); len(orphans) > 0 {
		ctx.Printf("⚠ Habit log: WARNING\n")
		ctx.Printf("   Entries for deleted habits: %s\n", strings.Join(orphans, ", "))
	} else {
		ctx.Printf("✓ Habit log: OK\n")
	}

	if err := checkClockTimezone(ctx.Tracker.Now()); err != nil {
		ctx.Printf("❌ Clock/timezone: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Clock/timezone: OK\n")
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(m *sqlite.Medium) error {
	runner, err := m.Runner()
	if err != nil {
		return err
	}
	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	if current != latest {
		return fmt.Errorf("schema version %d does not match expected version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(m *sqlite.Medium) error {
	backups, err := backup.NewManager(m.GetConfigPath()).ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found (run 'lifetrack backup create')")
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}
