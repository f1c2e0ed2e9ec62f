package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tmorel/basalviz/renderer"
	"github.com/tmorel/basalviz/ui"
)

var backgroundColor = rl.Color{R: 8, G: 9, B: 15, A: 255}

// panel layout constants, relative to the configured screen size.
const (
	panelMargin  = int32(16)
	sidebarWidth = int32(300)
	monitorH     = int32(110)
	consoleH     = int32(190)
)

// buildView constructs the renderers and panels. Only called in graphical
// mode; headless runs never touch raylib.
func (g *Game) buildView() {
	cfg := g.cfg
	w := int32(cfg.Screen.Width)
	h := int32(cfg.Screen.Height)

	g.brainR = renderer.NewBrainRenderer()
	g.pathwayR = renderer.NewPathwayRenderer(
		float32(cfg.Pathway.TubeRadius),
		float32(cfg.Pathway.PulseRadius),
	)
	g.flowR = renderer.NewFlowRenderer(cfg.Flow.DriftStrength)

	g.uiR = ui.NewRenderer()
	theme := g.uiR.Theme

	sideX := w - sidebarWidth - panelMargin
	g.narrative = ui.NewNarrativePanel(g.uiR, sideX, panelMargin, sidebarWidth)

	monY := h - 2*monitorH - 2*panelMargin
	g.phoneMon = ui.NewActivityMonitor(g.uiR, g.rng,
		sideX, monY, sidebarWidth, monitorH,
		"phone pathway", theme.AccentPhone,
		cfg.Monitor.HzScale, cfg.Monitor.Jitter)
	g.sportMon = ui.NewActivityMonitor(g.uiR, g.rng,
		sideX, monY+monitorH+panelMargin, sidebarWidth, monitorH,
		"exercise pathway", theme.AccentSport,
		cfg.Monitor.HzScale, cfg.Monitor.Jitter)

	g.consoleP = ui.NewConsolePanel(g.uiR,
		panelMargin, h-consoleH-panelMargin, 420, consoleH)

	g.overlay = ui.NewSceneOverlay(g.uiR)
}

// camera3D builds the raylib camera from the orbit state.
func (g *Game) camera3D() rl.Camera3D {
	x, y, z := g.cam.Position()
	return rl.NewCamera3D(
		rl.NewVector3(float32(x), float32(y), float32(z)),
		rl.NewVector3(float32(g.cam.TargetX), float32(g.cam.TargetY), float32(g.cam.TargetZ)),
		rl.NewVector3(0, 1, 0),
		float32(g.cfg.Camera.FOV),
		rl.CameraPerspective,
	)
}

// Draw renders one frame: the 3D scene, then the projected annotations,
// then the 2D panels. Panel button clicks are stored and applied on the
// next Update.
func (g *Game) Draw() {
	cam := g.camera3D()
	step := g.state.Step
	if step < 0 {
		step = 0
	}
	stage := g.state.Current()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	rl.BeginMode3D(cam)
	g.brainR.Draw()
	g.flowR.Draw(g.flow, g.tick, g.pointerX, g.pointerY)
	g.pathwayR.Draw(g.phone, step)
	g.pathwayR.Draw(g.sport, step)
	rl.EndMode3D()

	g.overlay.DrawLabels(cam, step)
	g.overlay.DrawThoughts(cam, g.thoughts.Active(), g.now())

	g.phoneMon.Draw(g.phoneHist.Values(), g.state.PhoneDisplayed)
	g.sportMon.Draw(g.sportHist.Values(), g.state.SportDisplayed)
	g.consoleP.Draw(g.console.Entries())

	action := g.narrative.Draw(step, stage)
	g.pending.Advance = g.pending.Advance || action.Advance
	g.pending.Retreat = g.pending.Retreat || action.Retreat

	if g.paused {
		g.uiR.DrawLabel(panelMargin, panelMargin, "paused (space to resume)")
	}

	rl.EndDrawing()
}
