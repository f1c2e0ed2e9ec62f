package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tmorel/basalviz/ui"
)

// handleInput processes keyboard, mouse, and deferred panel actions.
func (g *Game) handleInput() {
	// Panel button clicks are detected during Draw; apply them here so
	// the state mutation stays inside Update.
	if g.pending.Advance {
		g.Advance()
	}
	if g.pending.Retreat {
		g.Retreat()
	}
	g.pending = ui.Action{}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Keyboard narrative controls mirror the panel buttons
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyN) {
		g.Advance()
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyB) {
		g.Retreat()
	}

	g.handleCameraInput()
	g.handlePointer()
}

// handleCameraInput processes orbit drag, zoom, and the idle drift.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		g.cam.Rotate(
			float64(delta.X)*g.cfg.Camera.OrbitSpeed,
			-float64(delta.Y)*g.cfg.Camera.OrbitSpeed,
		)
	} else {
		g.cam.Rotate(g.cfg.Camera.IdleDrift*g.cfg.Sim.DT, 0)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Zoom(-float64(wheel) * g.cfg.Camera.ZoomSpeed)
	}
}

// handlePointer tracks the normalized mouse position in [-1,1] on each
// axis, which feeds the flow field drift.
func (g *Game) handlePointer() {
	pos := rl.GetMousePosition()
	w := g.cfg.Derived.ScreenW32
	h := g.cfg.Derived.ScreenH32
	if w <= 0 || h <= 0 {
		return
	}
	g.pointerX = float64(pos.X/w)*2 - 1
	g.pointerY = float64(pos.Y/h)*2 - 1
}
