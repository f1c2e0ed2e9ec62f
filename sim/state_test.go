package sim

import (
	"math"
	"testing"
)

func TestAdvanceWrapsMod4(t *testing.T) {
	s := NewState(0.1)
	s.Transition() // normalize to stage 0

	for n := 1; n <= 12; n++ {
		s.Advance()
		want := n % NumStages
		if s.Step != want {
			t.Fatalf("after %d advances Step = %d, want %d", n, s.Step, want)
		}
	}
}

func TestAdvanceReportsWrap(t *testing.T) {
	s := NewState(0.1)
	s.Transition()

	for i := 0; i < NumStages-1; i++ {
		if s.Advance() {
			t.Errorf("advance %d should not wrap", i)
		}
	}
	if !s.Advance() {
		t.Error("advance from step 3 should report a wrap")
	}
	if s.Step != 0 {
		t.Errorf("Step = %d after wrap, want 0", s.Step)
	}
}

func TestRetreatFloorsAtZero(t *testing.T) {
	s := NewState(0.1)
	s.Transition()

	if s.Retreat() {
		t.Error("retreat at stage 0 should be a no-op")
	}
	if s.Step != 0 {
		t.Errorf("Step = %d, want 0", s.Step)
	}

	s.Advance()
	s.Advance()
	if !s.Retreat() {
		t.Error("retreat from stage 2 should succeed")
	}
	if s.Step != 1 {
		t.Errorf("Step = %d, want 1", s.Step)
	}
}

func TestTransitionNormalizesUninitialized(t *testing.T) {
	s := NewState(0.1)
	if s.Step != -1 {
		t.Fatalf("fresh state Step = %d, want -1", s.Step)
	}

	stage, changed := s.Transition()
	if !changed {
		t.Fatal("first Transition should report a change")
	}
	if s.Step != 0 {
		t.Errorf("Step = %d after first Transition, want 0", s.Step)
	}
	if stage.Title != Stages[0].Title {
		t.Errorf("got stage %q, want stage 0", stage.Title)
	}
	if s.PhoneTarget != 0.3 || s.SportTarget != 0.3 {
		t.Errorf("stage-0 targets = %v/%v, want 0.3/0.3", s.PhoneTarget, s.SportTarget)
	}
}

func TestTransitionFiresOncePerChange(t *testing.T) {
	s := NewState(0.1)
	s.Transition()

	if _, changed := s.Transition(); changed {
		t.Error("redundant Transition should not report a change")
	}

	s.Advance()
	if _, changed := s.Transition(); !changed {
		t.Error("Transition after Advance should report a change")
	}
	if _, changed := s.Transition(); changed {
		t.Error("second Transition after the same Advance should not fire")
	}
}

func TestFullCycleRestoresStageZeroTargets(t *testing.T) {
	s := NewState(0.1)
	s.Transition()

	// 0 -> 1 -> 2 -> 3 -> 0
	for i := 0; i < NumStages; i++ {
		s.Advance()
		s.Transition()
	}

	if s.Step != 0 {
		t.Errorf("Step = %d after full cycle, want 0", s.Step)
	}
	if s.PhoneTarget != 0.3 || s.SportTarget != 0.3 {
		t.Errorf("targets = %v/%v after full cycle, want 0.3/0.3", s.PhoneTarget, s.SportTarget)
	}
}

func TestSmoothApproachesWithoutOvershoot(t *testing.T) {
	s := NewState(0.1)
	s.Transition()
	s.Advance()
	s.Transition() // stage 1: phone target 0.9

	prev := s.PhoneDisplayed
	for i := 0; i < 200; i++ {
		s.Smooth()
		if s.PhoneDisplayed > s.PhoneTarget+1e-12 {
			t.Fatalf("overshoot at tick %d: %v > %v", i, s.PhoneDisplayed, s.PhoneTarget)
		}
		if s.PhoneDisplayed < prev-1e-12 {
			t.Fatalf("non-monotonic at tick %d", i)
		}
		prev = s.PhoneDisplayed
	}

	if math.Abs(s.PhoneDisplayed-s.PhoneTarget) > 1e-6 {
		t.Errorf("displayed %v did not converge to %v", s.PhoneDisplayed, s.PhoneTarget)
	}
}

func TestStageTableShape(t *testing.T) {
	for i, stage := range Stages {
		if stage.Title == "" || stage.Description == "" || stage.Button == "" {
			t.Errorf("stage %d has empty display text", i)
		}
		if len(stage.LogLines) == 0 {
			t.Errorf("stage %d has no log lines", i)
		}
		if stage.PhoneTarget < 0 || stage.PhoneTarget > 1 || stage.SportTarget < 0 || stage.SportTarget > 1 {
			t.Errorf("stage %d targets out of range", i)
		}
		if len(stage.Thoughts) > 3 {
			t.Errorf("stage %d has %d thoughts, max 3", i, len(stage.Thoughts))
		}
	}
}
