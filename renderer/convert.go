// Package renderer provides the 3D drawing for the brain scene: the shell,
// the pathway tubes and pulses, and the ambient flow particles.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tmorel/basalviz/sim"
)

// vec3 converts a simulation vector into raylib space.
func vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// color converts a simulation color into a raylib color.
func color(c sim.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
