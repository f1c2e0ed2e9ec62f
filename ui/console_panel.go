package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tmorel/basalviz/telemetry"
)

// ConsolePanel renders the scrolling log feed, newest entries at the
// bottom.
type ConsolePanel struct {
	renderer *Renderer

	x, y          int32
	width, height int32
}

// NewConsolePanel creates a console panel at the given position.
func NewConsolePanel(renderer *Renderer, x, y, width, height int32) *ConsolePanel {
	return &ConsolePanel{
		renderer: renderer,
		x:        x,
		y:        y,
		width:    width,
		height:   height,
	}
}

// Draw renders as many of the newest entries as fit.
func (p *ConsolePanel) Draw(entries []telemetry.Entry) {
	r := p.renderer
	pad := r.Theme.Padding

	r.DrawPanel(p.x, p.y, p.width, p.height)
	rl.DrawText("activity log", p.x+pad, p.y+6, r.Theme.FontSize, r.Theme.LabelColor)

	lineH := r.Theme.LineHeight
	top := p.y + 6 + lineH
	visible := int((p.height - 12 - lineH) / lineH)
	if visible < 1 {
		return
	}

	start := len(entries) - visible
	if start < 0 {
		start = 0
	}

	y := top
	for _, e := range entries[start:] {
		stamp := e.At.Format("15:04:05")
		rl.DrawText(stamp, p.x+pad, y, p.renderer.Theme.FontSize, r.Theme.ConsoleTime)
		rl.DrawText(e.Text, p.x+pad+62, y, p.renderer.Theme.FontSize, r.Theme.ConsoleText)
		y += lineH
	}
}
