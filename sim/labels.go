package sim

import "gonum.org/v1/gonum/spatial/r3"

// Label is one fixed anatomical annotation. Visibility and highlight are
// pure functions of the current step, recomputed every frame.
type Label struct {
	Name      string
	Pos       r3.Vec
	Threshold int  // visible once step >= Threshold
	Always    bool // baseline anatomical context, visible at every step
}

// Labels holds the five fixed anatomical labels.
var Labels = [5]Label{
	{Name: "prefrontal cortex", Pos: r3.Vec{X: 1.2, Y: 1.1, Z: 0}, Always: true},
	{Name: "striatum", Pos: r3.Vec{X: 0.35, Y: 0.15, Z: 0.15}, Always: true},
	{Name: "SNc", Pos: r3.Vec{X: -0.05, Y: -0.85, Z: 0}, Threshold: 1},
	{Name: "GPi", Pos: r3.Vec{X: -0.2, Y: -0.2, Z: 0.15}, Threshold: 2},
	{Name: "thalamus", Pos: r3.Vec{X: -0.15, Y: 0.25, Z: -0.1}, Threshold: 3},
}

// Visible reports whether the label shows at the given step. Visibility is
// cumulative: once a label's stage is reached it stays visible at higher
// steps.
func (l Label) Visible(step int) bool {
	return l.Always || step >= l.Threshold
}

// Active reports whether the label carries the single-stage spotlight
// highlight, which applies only at exactly its own stage. Baseline labels
// never take the spotlight.
func (l Label) Active(step int) bool {
	return !l.Always && step == l.Threshold
}

// AnchorPositions maps thought anchors to their fixed 3D locations.
var AnchorPositions = map[AnchorID]r3.Vec{
	AnchorCortex:   {X: 1.2, Y: 1.45, Z: 0},
	AnchorStriatum: {X: 0.35, Y: 0.55, Z: 0.2},
	AnchorThalamus: {X: -0.15, Y: 0.65, Z: -0.1},
}
