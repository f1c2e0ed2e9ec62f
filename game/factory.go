package game

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tmorel/basalviz/geom"
	"github.com/tmorel/basalviz/sim"
)

// Pathway routes through the basal ganglia loop, in brain-space.
// Both start in the prefrontal cortex and descend through the striatum;
// they separate laterally so the competing signals stay readable.
var (
	phoneRoute = []r3.Vec{
		{X: 1.25, Y: 1.15, Z: 0.1},
		{X: 0.9, Y: 0.75, Z: 0.2},
		{X: 0.45, Y: 0.25, Z: 0.25},
		{X: 0.1, Y: -0.1, Z: 0.2},
		{X: -0.2, Y: -0.2, Z: 0.18},
		{X: -0.2, Y: 0.2, Z: 0.05},
		{X: 0.3, Y: 0.8, Z: -0.05},
		{X: 0.9, Y: 1.25, Z: 0.0},
	}

	sportRoute = []r3.Vec{
		{X: 1.25, Y: 1.15, Z: -0.1},
		{X: 0.85, Y: 0.7, Z: -0.25},
		{X: 0.4, Y: 0.15, Z: -0.3},
		{X: 0.05, Y: -0.15, Z: -0.25},
		{X: -0.25, Y: -0.25, Z: -0.2},
		{X: -0.25, Y: 0.2, Z: -0.1},
		{X: 0.25, Y: 0.75, Z: 0.0},
		{X: 0.85, Y: 1.2, Z: 0.05},
	}
)

// buildPathways creates the two competing pathways from the fixed routes.
func (g *Game) buildPathways() {
	dyn := sim.Dynamics{
		SpeedFloor:     g.cfg.Pathway.SpeedFloor,
		SpeedGain:      g.cfg.Pathway.SpeedGain,
		Smoothing:      g.cfg.Pathway.Smoothing,
		OpacityScale:   g.cfg.Pathway.OpacityScale,
		SportDampening: g.cfg.Pathway.SportDampening,
		SportJitter:    g.cfg.Pathway.SportJitter,
	}

	g.phone = sim.NewPathway(sim.PathwayPhone, geom.NewCurve(phoneRoute), g.cfg.Pathway.PulseCount, dyn)
	g.sport = sim.NewPathway(sim.PathwaySport, geom.NewCurve(sportRoute), g.cfg.Pathway.PulseCount, dyn)
}
