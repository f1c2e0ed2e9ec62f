package sim

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tmorel/basalviz/components"
	"github.com/tmorel/basalviz/geom"
)

// FlowField is the ambient particle layer: independent particles bound to
// the anatomical flow curves, each advancing at its own speed. It produces
// continuous background motion and carries no narrative state.
type FlowField struct {
	world  *ecs.World
	mapper *ecs.Map3[components.PathRef, components.Progress, components.Shimmer]
	filter *ecs.Filter3[components.PathRef, components.Progress, components.Shimmer]

	curves []*geom.Curve
	count  int
}

// NewFlowField spawns perPath particles on each curve, with per-particle
// speeds drawn uniformly from [speedMin, speedMax).
func NewFlowField(curves []*geom.Curve, perPath int, speedMin, speedMax float64, rng *rand.Rand) *FlowField {
	f := &FlowField{curves: curves}
	f.world = ecs.NewWorld()
	f.mapper = ecs.NewMap3[components.PathRef, components.Progress, components.Shimmer](f.world)
	f.filter = ecs.NewFilter3[components.PathRef, components.Progress, components.Shimmer](f.world)

	for ci := range curves {
		for i := 0; i < perPath; i++ {
			ref := components.PathRef{Index: ci}
			prog := components.Progress{
				T:     rng.Float64(),
				Speed: speedMin + rng.Float64()*(speedMax-speedMin),
			}
			shim := components.Shimmer{Phase: rng.Float64() * 2 * math.Pi}
			f.mapper.NewEntity(&ref, &prog, &shim)
			f.count++
		}
	}
	return f
}

// Step advances every particle along its curve, wrapping at the end.
func (f *FlowField) Step() {
	query := f.filter.Query()
	for query.Next() {
		_, prog, _ := query.Get()
		prog.T = math.Mod(prog.T+prog.Speed, 1)
	}
}

// Each calls fn with every particle's world position and shimmer phase.
func (f *FlowField) Each(fn func(pos r3.Vec, phase float64)) {
	query := f.filter.Query()
	for query.Next() {
		ref, prog, shim := query.Get()
		fn(f.curves[ref.Index].PointAt(prog.T), shim.Phase)
	}
}

// Count returns the number of particles.
func (f *FlowField) Count() int {
	return f.count
}
