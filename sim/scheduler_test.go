package sim

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source for scheduler tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)

	var got []int
	s.After(200*time.Millisecond, func() { got = append(got, 2) })
	s.After(100*time.Millisecond, func() { got = append(got, 1) })
	s.After(300*time.Millisecond, func() { got = append(got, 3) })

	s.Run()
	if len(got) != 0 {
		t.Fatalf("nothing should be due yet, got %v", got)
	}

	clock.Advance(250 * time.Millisecond)
	s.Run()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got %v, want [1 2]", got)
	}

	clock.Advance(100 * time.Millisecond)
	s.Run()
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerBumpCancelsOlderGenerations(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)

	fired := 0
	s.After(100*time.Millisecond, func() { fired++ })
	s.After(200*time.Millisecond, func() { fired++ })

	s.Bump()
	s.After(100*time.Millisecond, func() { fired += 10 })

	clock.Advance(time.Second)
	s.Run()

	if fired != 10 {
		t.Errorf("fired = %d, want 10 (old generation cancelled)", fired)
	}
}

func TestSchedulerStaggeredLines(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)

	// Stage log lines post with fixed spacing, in list order.
	lines := []string{"a", "b", "c"}
	var posted []string
	for i, line := range lines {
		line := line
		s.After(time.Duration(i)*600*time.Millisecond, func() { posted = append(posted, line) })
	}

	// Line 0 is due immediately; each spacing releases one more.
	s.Run()
	if len(posted) != 1 {
		t.Fatalf("at spawn posted %d lines, want 1", len(posted))
	}
	for i := 1; i < 3; i++ {
		clock.Advance(600 * time.Millisecond)
		s.Run()
		if len(posted) != i+1 {
			t.Fatalf("after %d spacings posted %d lines, want %d", i, len(posted), i+1)
		}
	}
	for i, line := range lines {
		if posted[i] != line {
			t.Errorf("posted[%d] = %q, want %q", i, posted[i], line)
		}
	}
}

func TestSchedulerGeneration(t *testing.T) {
	s := NewScheduler(newFakeClock().Now)
	if s.Generation() != 0 {
		t.Errorf("initial generation = %d, want 0", s.Generation())
	}
	s.Bump()
	s.Bump()
	if s.Generation() != 2 {
		t.Errorf("generation = %d, want 2", s.Generation())
	}
}
