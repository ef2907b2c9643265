// Package ids issues creation-timestamp identifiers that never collide
// within a collection.
package ids

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator issues unix-millisecond ids. Two calls in the same millisecond,
// or a clock that moves backwards, fall back to last+1 so ids stay unique
// and increase in creation order.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// New creates a generator. A nil clock means time.Now.
func New(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns a new id greater than every previously issued id and every
// id in taken.
func (g *Generator) Next(taken ...int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	for _, t := range taken {
		if id <= t {
			id = t + 1
		}
	}
	g.last = id
	return id
}

// NextString returns prefix followed by a fresh timestamp id. If the result
// is already in taken, a short random suffix is appended.
func (g *Generator) NextString(prefix string, taken []string) string {
	base := prefix + strconv.FormatInt(g.Next(), 10)
	id := base
	for contains(taken, id) {
		id = base + "-" + uuid.NewString()[:8]
	}
	return id
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
