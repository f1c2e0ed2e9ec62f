package sim

// State is the single owning record of narrative progress and the smoothed
// activity levels derived from it. One instance exists per run; all
// mutation happens from the frame loop.
type State struct {
	// Step is the current narrative step, -1 before the first update.
	Step int

	// lastStep tracks the previously applied step so one-shot stage
	// effects fire exactly once per genuine transition.
	lastStep int

	PhoneTarget float64
	SportTarget float64

	PhoneDisplayed float64
	SportDisplayed float64

	smoothing float64
}

// NewState creates the simulation state. smoothing is the per-tick lerp
// factor toward activity targets and must be in (0,1).
func NewState(smoothing float64) *State {
	return &State{
		Step:      -1,
		lastStep:  -1,
		smoothing: smoothing,
	}
}

// Advance moves to the next step, wrapping 3 -> 0. The wrap is a full
// narrative reset; Advance reports whether it happened.
func (s *State) Advance() (wrapped bool) {
	step := s.Step
	if step < 0 {
		step = 0
	}
	next := (step + 1) % NumStages
	wrapped = next < step
	s.Step = next
	return wrapped
}

// Retreat moves one step back, clamped at 0. At the floor it is a no-op
// and reports false.
func (s *State) Retreat() bool {
	if s.Step <= 0 {
		if s.Step < 0 {
			s.Step = 0
		}
		return false
	}
	s.Step--
	return true
}

// Transition normalizes an uninitialized step to 0, then reports whether
// the step changed since the last call. On a change it loads the new
// stage's activity targets and arms lastStep, so stage-entry effects
// trigger exactly once.
func (s *State) Transition() (Stage, bool) {
	if s.Step < 0 {
		s.Step = 0
	}
	if s.Step == s.lastStep {
		return Stage{}, false
	}
	s.lastStep = s.Step
	stage := Stages[s.Step]
	s.PhoneTarget = stage.PhoneTarget
	s.SportTarget = stage.SportTarget
	return stage, true
}

// Current returns the stage record for the current step. Valid only after
// the first Transition call.
func (s *State) Current() Stage {
	step := s.Step
	if step < 0 {
		step = 0
	}
	return Stages[step]
}

// Smooth moves the displayed activity levels one lerp increment toward
// their targets. With a factor in (0,1) the displayed values approach
// monotonically and never overshoot.
func (s *State) Smooth() {
	s.PhoneDisplayed += (s.PhoneTarget - s.PhoneDisplayed) * s.smoothing
	s.SportDisplayed += (s.SportTarget - s.SportDisplayed) * s.smoothing
}
