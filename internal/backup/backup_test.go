package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) string {
	dbPath := filepath.Join(t.TempDir(), "lifetrack.db")

	m := sqlite.NewMedium(dbPath)
	if err := m.Init(); err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
	if err := m.SetItem("life-tracker-todos", `[{"id":1,"text":"first"}]`); err != nil {
		t.Fatalf("failed to seed database: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}
	return dbPath
}

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func readTodos(t *testing.T, dbPath string) string {
	m := sqlite.NewMedium(dbPath)
	if err := m.Load(); err != nil {
		t.Fatalf("failed to load database: %v", err)
	}
	defer m.Close()

	v, _, err := m.GetItem("life-tracker-todos")
	if err != nil {
		t.Fatalf("failed to read todos: %v", err)
	}
	return v
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Dir(backupPath) != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("backup written outside backup dir: %s", backupPath)
	}

	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&count); err != nil {
		t.Fatalf("failed to query backup database: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row in backup, got %d", count)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local))

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted correctly: backup %d is newer than backup %d", i, i-1)
		}
	}

	// The oldest five were pruned
	oldest := time.Date(2024, 1, 1, 8, 0, 5, 0, time.Local)
	if !backups[len(backups)-1].Timestamp.Equal(oldest) {
		t.Errorf("expected oldest kept backup at %v, got %v", oldest, backups[len(backups)-1].Timestamp)
	}
}

func TestSameSecondBackupsGetCounter(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	fixed := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first backup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second backup failed: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct backup paths")
	}
	if filepath.Base(second) != "lifetrack-20240101-080000-1.db" {
		t.Errorf("unexpected counter name %s", filepath.Base(second))
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 || backups[0].Path != second {
		t.Errorf("expected counter backup listed first, got %+v", backups)
	}
}

func TestListBackupsIgnoresOtherFiles(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "lifetrack.db"))

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups without a directory, got %d", len(backups))
	}

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for _, name := range []string{"notes.txt", "lifetrack-latest.db", "other-20240101-080000.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected unrelated files to be ignored, got %+v", backups)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local))

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the live database after the backup
	m := sqlite.NewMedium(dbPath)
	if err := m.Load(); err != nil {
		t.Fatalf("failed to load database: %v", err)
	}
	storage.NewStore(m).SetTodos(nil)
	m.Close()

	safety, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if safety == "" {
		t.Error("expected a safety backup of the current database")
	}

	if got := readTodos(t, dbPath); got != `[{"id":1,"text":"first"}]` {
		t.Errorf("expected restored todos, got %q", got)
	}
	if got := readTodos(t, safety); got != "null" {
		t.Errorf("expected safety backup to hold pre-restore state, got %q", got)
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write bogus file: %v", err)
	}

	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("expected error restoring an invalid backup")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error restoring a missing backup")
	}

	// The live database is untouched
	if got := readTodos(t, dbPath); got != `[{"id":1,"text":"first"}]` {
		t.Errorf("live database changed: %q", got)
	}
}
