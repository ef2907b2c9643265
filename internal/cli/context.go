package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

// Initializer is implemented by media that need to create their backing
// file before first use.
type Initializer interface {
	Init() error
}

// Context is passed to every command's Run method.
type Context struct {
	Store   *storage.Store
	Medium  storage.Medium // nil when no medium could be opened
	Tracker *tracker.Service
	DBPath  string
	Out     io.Writer

	// Confirm asks a yes/no question. Tests replace it.
	Confirm func(title string) (bool, error)
}

// NewContext wires a context over medium. medium may be nil.
func NewContext(medium storage.Medium, dbPath string) *Context {
	store := storage.NewStore(medium)
	return &Context{
		Store:   store,
		Medium:  medium,
		Tracker: tracker.New(store, nil),
		DBPath:  dbPath,
		Out:     os.Stdout,
		Confirm: confirm,
	}
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// Ask runs the confirmation prompt unless skip is set.
func (c *Context) Ask(title string, skip bool) (bool, error) {
	if skip || c.Confirm == nil {
		return true, nil
	}
	return c.Confirm(title)
}

func confirm(title string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
