package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tmorel/basalviz/sim"
)

// thoughtStackSpacing is the vertical pixel offset between stacked
// thoughts sharing an anchor.
const thoughtStackSpacing = 26

var (
	labelColor       = rl.Color{R: 190, G: 196, B: 216, A: 255}
	labelActiveColor = rl.Color{R: 255, G: 224, B: 120, A: 255}
	thoughtBg        = rl.Color{R: 30, G: 32, B: 48, A: 210}
	thoughtText      = rl.Color{R: 226, G: 228, B: 240, A: 255}
)

// SceneOverlay projects 3D-anchored annotations (anatomical labels and
// thought bubbles) into screen space and draws them as 2D text.
type SceneOverlay struct {
	renderer *Renderer
}

// NewSceneOverlay creates the overlay renderer.
func NewSceneOverlay(renderer *Renderer) *SceneOverlay {
	return &SceneOverlay{renderer: renderer}
}

// project maps a brain-space position to screen coordinates.
func project(pos r3.Vec, cam rl.Camera) rl.Vector2 {
	return rl.GetWorldToScreen(rl.Vector3{X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z)}, cam)
}

// DrawLabels renders the anatomical labels visible at the current step,
// with the spotlight highlight on the step's own label.
func (o *SceneOverlay) DrawLabels(cam rl.Camera, step int) {
	for _, l := range sim.Labels {
		if !l.Visible(step) {
			continue
		}

		p := project(l.Pos, cam)
		c := labelColor
		size := o.renderer.Theme.FontSize
		if l.Active(step) {
			c = labelActiveColor
			size += 2
		}

		w := rl.MeasureText(l.Name, size)
		rl.DrawText(l.Name, int32(p.X)-w/2, int32(p.Y), size, c)
		rl.DrawCircle(int32(p.X), int32(p.Y)-6, 2, c)
	}
}

// DrawThoughts renders the live thought bubbles with their lifecycle
// alpha, stacked vertically per anchor.
func (o *SceneOverlay) DrawThoughts(cam rl.Camera, thoughts []sim.Thought, now time.Time) {
	fontSize := o.renderer.Theme.FontSize

	for i := range thoughts {
		th := &thoughts[i]
		alpha := float32(th.Alpha(now))
		if alpha <= 0 {
			continue
		}

		anchor, ok := sim.AnchorPositions[th.Anchor]
		if !ok {
			continue
		}
		p := project(anchor, cam)
		y := int32(p.Y) - 30 - int32(th.Stack)*thoughtStackSpacing

		w := rl.MeasureText(th.Text, fontSize)
		x := int32(p.X) - w/2

		rl.DrawRectangle(x-6, y-4, w+12, fontSize+8, rl.Fade(thoughtBg, alpha))
		rl.DrawText(th.Text, x, y, fontSize, rl.Fade(thoughtText, alpha))
	}
}
