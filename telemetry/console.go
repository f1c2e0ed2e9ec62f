package telemetry

import "time"

// ResetMessage is the single entry the console carries after a narrative
// reset.
const ResetMessage = "--- simulation reset ---"

// Entry is one timestamped console line.
type Entry struct {
	At   time.Time
	Text string
}

// Console is the append-only, capacity-bounded log feed. When full, the
// oldest entries are dropped first.
type Console struct {
	now      func() time.Time
	entries  []Entry
	capacity int
}

// NewConsole creates a console holding at most capacity entries.
func NewConsole(capacity int, now func() time.Time) *Console {
	if capacity < 1 {
		capacity = 1
	}
	return &Console{now: now, capacity: capacity}
}

// Post appends a timestamped line, trimming the oldest entries past
// capacity.
func (c *Console) Post(text string) {
	c.entries = append(c.entries, Entry{At: c.now(), Text: text})
	if len(c.entries) > c.capacity {
		overflow := len(c.entries) - c.capacity
		c.entries = append(c.entries[:0], c.entries[overflow:]...)
	}
}

// Reset clears the feed and posts exactly one reset entry.
func (c *Console) Reset() {
	c.entries = c.entries[:0]
	c.Post(ResetMessage)
}

// Entries returns the feed oldest-first.
func (c *Console) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries currently held.
func (c *Console) Len() int {
	return len(c.entries)
}
