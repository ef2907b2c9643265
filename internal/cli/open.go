package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/jsonfile"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// DataDir returns the directory that holds the database and logs for dsn.
func DataDir(dsn string) string {
	if dsn == constants.MemoryDSN {
		return ExpandPath(constants.DefaultDataDir)
	}
	return filepath.Dir(ExpandPath(dsn))
}

// OpenMedium selects a medium from dsn: ":memory:" keeps data in process,
// a .json path uses the JSON file medium and anything else is SQLite. The
// SQLite file is created and migrated on first use.
func OpenMedium(dsn string) (storage.Medium, error) {
	switch {
	case dsn == constants.MemoryDSN:
		return storage.NewMemoryMedium(), nil
	case strings.EqualFold(filepath.Ext(dsn), ".json"):
		return jsonfile.NewMedium(ExpandPath(dsn)), nil
	default:
		m := sqlite.NewMedium(ExpandPath(dsn))
		if err := m.Init(); err != nil {
			m.Close()
			return nil, err
		}
		return m, nil
	}
}

// UseLocation makes day boundaries follow loc.
func (c *Context) UseLocation(loc *time.Location) {
	c.Tracker = tracker.New(c.Store, func() time.Time { return time.Now().In(loc) })
}
