// Package journal keeps a bounded in-memory log of planner activity so a
// caller can show "what just happened" without the engine ever printing.
package journal

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type Kind string

const (
	KindTableAdded     Kind = "table_added"
	KindTableRemoved   Kind = "table_removed"
	KindGroupAdded     Kind = "group_added"
	KindGroupRenamed   Kind = "group_renamed"
	KindGroupSeated    Kind = "group_seated"
	KindGroupLeft      Kind = "group_left"
	KindTablesCombined Kind = "tables_combined"
	KindOptimized      Kind = "seating_optimized"
)

type Entry struct {
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
	Kind Kind      `json:"kind"`
	Text string    `json:"text"`
}

const DefaultCapacity = 64

// Journal is a fixed-capacity ring of entries, newest kept. Safe for
// concurrent use.
type Journal struct {
	mu      sync.Mutex
	max     int
	entries []Entry
	entropy *ulid.MonotonicEntropy
}

func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{
		max:     capacity,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

func (j *Journal) Record(kind Kind, format string, args ...any) Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	now := time.Now()
	e := Entry{
		ID:   ulid.MustNew(ulid.Timestamp(now), j.entropy).String(),
		At:   now.UTC(),
		Kind: kind,
		Text: fmt.Sprintf(format, args...),
	}
	j.entries = append(j.entries, e)
	if len(j.entries) > j.max {
		j.entries = j.entries[len(j.entries)-j.max:]
	}
	return e
}

// Recent returns up to n entries, newest first. n <= 0 means all retained.
func (j *Journal) Recent(n int) []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	if n <= 0 || n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(j.entries) - 1; i >= len(j.entries)-n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}
