// Package components defines the ECS components for ambient flow
// particles.
package components

// PathRef binds a particle to one of the ambient flow curves.
type PathRef struct {
	Index int
}

// Progress tracks a particle's position along its curve and its own
// advance rate per tick.
type Progress struct {
	T     float64
	Speed float64
}

// Shimmer carries the per-particle phase offset used for the pulsing glow.
type Shimmer struct {
	Phase float64
}
