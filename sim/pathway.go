package sim

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tmorel/basalviz/geom"
)

// PathwayID identifies one of the two competing pathways.
type PathwayID int

const (
	PathwayPhone PathwayID = iota
	PathwaySport
)

// String returns the pathway's display name.
func (id PathwayID) String() string {
	if id == PathwayPhone {
		return "phone"
	}
	return "exercise"
}

// RGBA is a plain color value, kept renderer-agnostic so the core stays
// headless.
type RGBA struct {
	R, G, B, A uint8
}

// Dynamics bundles the pathway motion tunables.
type Dynamics struct {
	SpeedFloor     float64 // progress per tick at zero activity
	SpeedGain      float64 // extra progress per tick per unit activity
	Smoothing      float64 // intensity lerp factor
	OpacityScale   float64 // activity target scaled by this before the lerp
	SportDampening float64 // speed multiplier while the sport pathway is suppressed
	SportJitter    float64 // positional jitter amplitude while suppressed
}

// Pulse is one traveling signal marker on a pathway's curve.
type Pulse struct {
	Progress float64 // position along the curve, wraps in [0,1)
	Pos      r3.Vec  // world position, refreshed every tick
	Active   bool
}

// Pathway is a named neural route: a curve, a fixed pool of pulses, and a
// displayed intensity that tracks the stage's activity target. Pulses
// never migrate between pathways and the pool size is fixed for the
// pathway's lifetime.
type Pathway struct {
	ID        PathwayID
	Curve     *geom.Curve
	Pulses    []Pulse
	Intensity float64

	dyn Dynamics
}

// NewPathway creates a pathway with pulseCount pulses spread evenly along
// the curve.
func NewPathway(id PathwayID, curve *geom.Curve, pulseCount int, dyn Dynamics) *Pathway {
	p := &Pathway{
		ID:     id,
		Curve:  curve,
		Pulses: make([]Pulse, pulseCount),
		dyn:    dyn,
	}
	for i := range p.Pulses {
		p.Pulses[i].Progress = float64(i) / float64(pulseCount)
		p.Pulses[i].Pos = curve.PointAt(p.Pulses[i].Progress)
		p.Pulses[i].Active = true
	}
	return p
}

// Step advances the pathway by one tick. activity is the displayed (already
// smoothed) activity level for this pathway; step is the current narrative
// step. rng feeds the suppressed-pathway jitter and may be nil.
func (p *Pathway) Step(activity float64, step int, rng *rand.Rand) {
	p.Intensity += (activity*p.dyn.OpacityScale - p.Intensity) * p.dyn.Smoothing

	suppressed := p.ID == PathwaySport && step >= 2

	for i := range p.Pulses {
		pu := &p.Pulses[i]
		if !pu.Active {
			continue
		}

		speed := p.dyn.SpeedFloor + activity*p.dyn.SpeedGain
		if suppressed {
			speed *= p.dyn.SportDampening
		}

		pu.Progress = math.Mod(pu.Progress+speed, 1)
		pos := p.Curve.PointAt(pu.Progress)

		if suppressed && rng != nil {
			amp := p.dyn.SportJitter
			pos.X += (rng.Float64()*2 - 1) * amp
			pos.Y += (rng.Float64()*2 - 1) * amp
			pos.Z += (rng.Float64()*2 - 1) * amp
		}
		pu.Pos = pos
	}
}

// Pathway base colors.
var (
	phoneBase = RGBA{R: 255, G: 107, B: 74, A: 255} // warm ember
	sportBase = RGBA{R: 74, G: 222, B: 128, A: 255} // spring green
	pulseWhite = RGBA{R: 255, G: 255, B: 255, A: 255}
	sportDark  = RGBA{R: 28, G: 84, B: 52, A: 255}
)

// BaseColor returns the pathway's fixed base color.
func BaseColor(id PathwayID) RGBA {
	if id == PathwayPhone {
		return phoneBase
	}
	return sportBase
}

// PulseStyle derives pulse scale and color purely from pathway identity and
// the current step. Phone pulses enlarge and whiten once the dopamine burst
// lands (step >= 1); sport pulses shrink and darken once suppressed
// (step >= 2). Recomputed every frame, never cached.
func PulseStyle(id PathwayID, step int) (scale float64, color RGBA) {
	switch {
	case id == PathwayPhone && step >= 1:
		return 2.0, pulseWhite
	case id == PathwaySport && step >= 2:
		return 0.5, sportDark
	default:
		return 1.0, BaseColor(id)
	}
}
