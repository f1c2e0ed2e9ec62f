package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tmorel/basalviz/sim"
)

var flowColor = rl.Color{R: 80, G: 120, B: 200, A: 255}

// FlowRenderer draws the ambient flow particles with additive blending.
type FlowRenderer struct {
	driftStrength float64
}

// NewFlowRenderer creates a flow renderer. driftStrength scales the
// pointer-driven perturbation of the particle cloud.
func NewFlowRenderer(driftStrength float64) *FlowRenderer {
	return &FlowRenderer{driftStrength: driftStrength}
}

// Draw renders all flow particles. pointer is the normalized mouse
// position in [-1,1] on each axis; it nudges the whole cloud so the scene
// responds subtly to the viewer. Must run inside a 3D mode block.
func (r *FlowRenderer) Draw(field *sim.FlowField, tick int32, pointerX, pointerY float64) {
	driftX := pointerX * r.driftStrength
	driftY := -pointerY * r.driftStrength

	rl.BeginBlendMode(rl.BlendAdditive)

	field.Each(func(pos r3.Vec, phase float64) {
		// Pulse/shimmer effect
		pulse := math.Sin(float64(tick)*0.03+phase)*0.5 + 0.5
		alpha := float32(0.15 + pulse*0.45)

		p := pos
		p.X += driftX
		p.Y += driftY
		rl.DrawSphere(vec3(p), 0.02, rl.Fade(flowColor, alpha))
	})

	rl.EndBlendMode()
}
