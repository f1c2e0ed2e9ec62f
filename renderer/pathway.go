package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tmorel/basalviz/sim"
)

// tubeSamples is the number of segments used to approximate a pathway tube.
const tubeSamples = 48

// PathwayRenderer draws pathway tubes and their traveling pulses.
type PathwayRenderer struct {
	tubeRadius  float32
	pulseRadius float32
}

// NewPathwayRenderer creates a pathway renderer with the given tube and
// pulse radii.
func NewPathwayRenderer(tubeRadius, pulseRadius float32) *PathwayRenderer {
	return &PathwayRenderer{
		tubeRadius:  tubeRadius,
		pulseRadius: pulseRadius,
	}
}

// Draw renders one pathway. Tube alpha follows the pathway's displayed
// intensity; pulse scale and color come from the stage-derived style.
// Must run inside a 3D mode block.
func (r *PathwayRenderer) Draw(p *sim.Pathway, step int) {
	base := color(sim.BaseColor(p.ID))

	alpha := float32(p.Intensity)
	if alpha > 1 {
		alpha = 1
	}
	// Keep a faint trace visible even at zero activity.
	tubeColor := rl.Fade(base, 0.08+alpha*0.92)

	prev := vec3(p.Curve.PointAt(0))
	for i := 1; i <= tubeSamples; i++ {
		cur := vec3(p.Curve.PointAt(float64(i) / tubeSamples))
		rl.DrawCylinderEx(prev, cur, r.tubeRadius, r.tubeRadius, 6, tubeColor)
		prev = cur
	}

	scale, pc := sim.PulseStyle(p.ID, step)
	pulseColor := color(pc)
	radius := r.pulseRadius * float32(scale)

	for i := range p.Pulses {
		pu := &p.Pulses[i]
		if !pu.Active {
			continue
		}
		rl.DrawSphere(vec3(pu.Pos), radius, pulseColor)
	}
}
