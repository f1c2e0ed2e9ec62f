package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
)

// brain shell and region geometry, in brain-space units.
var (
	shellCenter = r3.Vec{X: 0, Y: 0.4, Z: 0}
	shellRadius = float32(2.1)

	regionColor = rl.Color{R: 90, G: 100, B: 140, A: 40}
	shellColor  = rl.Color{R: 70, G: 80, B: 120, A: 26}
)

// region is one translucent anatomical blob.
type region struct {
	pos    r3.Vec
	radius float32
}

var regions = []region{
	{pos: r3.Vec{X: 1.2, Y: 1.1, Z: 0}, radius: 0.55},    // prefrontal cortex
	{pos: r3.Vec{X: 0.35, Y: 0.15, Z: 0.15}, radius: 0.4}, // striatum
	{pos: r3.Vec{X: -0.05, Y: -0.85, Z: 0}, radius: 0.3},  // SNc
	{pos: r3.Vec{X: -0.2, Y: -0.2, Z: 0.15}, radius: 0.28}, // GPi
	{pos: r3.Vec{X: -0.15, Y: 0.25, Z: -0.1}, radius: 0.32}, // thalamus
}

// BrainRenderer draws the static anatomical backdrop.
type BrainRenderer struct{}

// NewBrainRenderer creates the brain backdrop renderer.
func NewBrainRenderer() *BrainRenderer {
	return &BrainRenderer{}
}

// Draw renders the brain shell and region blobs. Must run inside a 3D mode
// block.
func (r *BrainRenderer) Draw() {
	rl.DrawSphereWires(vec3(shellCenter), shellRadius, 12, 16, shellColor)

	for _, reg := range regions {
		rl.DrawSphere(vec3(reg.pos), reg.radius, regionColor)
	}
}
