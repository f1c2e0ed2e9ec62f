package sim

import (
	"sort"
	"time"
)

// task is one pending delayed action.
type task struct {
	due time.Time
	gen int
	fn  func()
}

// Scheduler runs one-shot delayed actions from the frame loop. Tasks are
// keyed by the generation that created them; bumping the generation cancels
// everything scheduled by earlier generations, so a stage re-transition
// never leaks stale log lines or thought spawns.
type Scheduler struct {
	now   func() time.Time
	gen   int
	tasks []task
}

// NewScheduler creates a scheduler reading time from now.
func NewScheduler(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Generation returns the current generation.
func (s *Scheduler) Generation() int {
	return s.gen
}

// Bump starts a new generation and cancels all tasks from older ones.
func (s *Scheduler) Bump() {
	s.gen++
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.gen >= s.gen {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// After schedules fn to run d after the current time, in the current
// generation.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.tasks = append(s.tasks, task{due: s.now().Add(d), gen: s.gen, fn: fn})
}

// Run executes all tasks due at or before the current time, oldest first,
// and removes them.
func (s *Scheduler) Run() {
	now := s.now()

	var due []task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of scheduled tasks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
