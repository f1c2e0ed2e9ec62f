// Package camera implements the orbit camera for the 3D brain view.
package camera

import "math"

// Pitch limits keep the camera from flipping over the poles.
const (
	MinPitch = -1.2
	MaxPitch = 1.2
)

// Orbit is a camera orbiting a fixed target at a yaw/pitch/distance.
type Orbit struct {
	Yaw      float64 // radians around the vertical axis
	Pitch    float64 // radians above the horizon
	Distance float64

	MinDistance float64
	MaxDistance float64

	TargetX, TargetY, TargetZ float64
}

// New creates an orbit camera at the given starting pitch and distance.
func New(pitch, distance, minDist, maxDist float64) *Orbit {
	o := &Orbit{
		Pitch:       pitch,
		Distance:    distance,
		MinDistance: minDist,
		MaxDistance: maxDist,
	}
	o.clamp()
	return o
}

// Rotate applies a yaw/pitch delta, wrapping yaw and clamping pitch.
func (o *Orbit) Rotate(dYaw, dPitch float64) {
	o.Yaw += dYaw
	for o.Yaw > math.Pi {
		o.Yaw -= 2 * math.Pi
	}
	for o.Yaw < -math.Pi {
		o.Yaw += 2 * math.Pi
	}
	o.Pitch += dPitch
	o.clamp()
}

// Zoom changes the orbit distance, clamped into [MinDistance, MaxDistance].
func (o *Orbit) Zoom(delta float64) {
	o.Distance += delta
	o.clamp()
}

// clamp enforces pitch and distance limits.
func (o *Orbit) clamp() {
	if o.Pitch > MaxPitch {
		o.Pitch = MaxPitch
	}
	if o.Pitch < MinPitch {
		o.Pitch = MinPitch
	}
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}

// Position returns the camera's world position.
func (o *Orbit) Position() (x, y, z float64) {
	cp := math.Cos(o.Pitch)
	x = o.TargetX + o.Distance*cp*math.Cos(o.Yaw)
	y = o.TargetY + o.Distance*math.Sin(o.Pitch)
	z = o.TargetZ + o.Distance*cp*math.Sin(o.Yaw)
	return x, y, z
}
