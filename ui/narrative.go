package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tmorel/basalviz/sim"
)

// Action reports which narrative control the user clicked this frame.
type Action struct {
	Advance bool
	Retreat bool
}

// NarrativePanel renders the stage title, description, and the
// advance/retreat controls.
type NarrativePanel struct {
	renderer *Renderer

	x, y  int32
	width int32
}

// NewNarrativePanel creates the narrative panel at the given position.
func NewNarrativePanel(renderer *Renderer, x, y, width int32) *NarrativePanel {
	return &NarrativePanel{
		renderer: renderer,
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the panel for the given stage and returns any clicked
// action. The retreat control is hidden at stage 0.
func (p *NarrativePanel) Draw(step int, stage sim.Stage) Action {
	r := p.renderer
	pad := r.Theme.Padding

	descLines := WrapText(stage.Description, r.Theme.FontSize, p.width-2*pad)
	height := 6 + r.Theme.LineHeight + 10 + int32(len(descLines))*r.Theme.LineHeight + 10 + 34 + int32(pad)

	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + 6
	title := fmt.Sprintf("%d/4  %s", step+1, stage.Title)
	y = r.DrawSectionHeader(p.x+pad, y, title)
	y += 4

	for _, line := range descLines {
		rl.DrawText(line, p.x+pad, y, r.Theme.FontSize, r.Theme.ValueColor)
		y += r.Theme.LineHeight
	}
	y += 10

	var action Action
	buttonW := float32(p.width-3*pad) / 2

	if gui.Button(rl.Rectangle{X: float32(p.x + pad), Y: float32(y), Width: buttonW, Height: 30}, stage.Button) {
		action.Advance = true
	}
	if step > 0 {
		back := rl.Rectangle{X: float32(p.x+2*pad) + buttonW, Y: float32(y), Width: buttonW, Height: 30}
		if gui.Button(back, "Back") {
			action.Retreat = true
		}
	}

	return action
}
