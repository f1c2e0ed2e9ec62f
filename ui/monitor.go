package ui

import (
	"fmt"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ActivityMonitor renders one EEG-style strip chart with a Hz readout.
// The waveform comes straight from the history buffer; the only thing
// added here is small per-draw cosmetic jitter, which is never stored.
type ActivityMonitor struct {
	renderer *Renderer
	rng      *rand.Rand

	x, y          int32
	width, height int32

	label   string
	accent  rl.Color
	hzScale float64
	jitter  float64
}

// NewActivityMonitor creates a monitor panel at the given position.
func NewActivityMonitor(renderer *Renderer, rng *rand.Rand, x, y, width, height int32, label string, accent rl.Color, hzScale, jitter float64) *ActivityMonitor {
	return &ActivityMonitor{
		renderer: renderer,
		rng:      rng,
		x:        x,
		y:        y,
		width:    width,
		height:   height,
		label:    label,
		accent:   accent,
		hzScale:  hzScale,
		jitter:   jitter,
	}
}

// Draw renders the chart from the history samples (oldest first) and the
// current displayed value.
func (m *ActivityMonitor) Draw(samples []float64, displayed float64) {
	r := m.renderer
	pad := r.Theme.Padding

	r.DrawPanel(m.x, m.y, m.width, m.height)

	// Header: label left, Hz readout right
	rl.DrawText(m.label, m.x+pad, m.y+6, r.Theme.FontSize, r.Theme.LabelColor)
	hz := fmt.Sprintf("%d Hz", int(math.Round(displayed*m.hzScale)))
	hzWidth := rl.MeasureText(hz, r.Theme.FontSize)
	rl.DrawText(hz, m.x+m.width-pad-hzWidth, m.y+6, r.Theme.FontSize, m.accent)

	// Chart area
	chartX := m.x + pad
	chartY := m.y + 6 + r.Theme.LineHeight
	chartW := m.width - 2*pad
	chartH := m.height - 12 - r.Theme.LineHeight

	rl.DrawRectangle(chartX, chartY, chartW, chartH, r.Theme.GraphBg)
	midY := chartY + chartH/2
	rl.DrawLine(chartX, midY, chartX+chartW, midY, r.Theme.GraphGrid)

	if len(samples) < 2 {
		return
	}

	toPoint := func(i int, v float64) rl.Vector2 {
		v += (m.rng.Float64()*2 - 1) * m.jitter
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		px := float32(chartX) + float32(i)/float32(len(samples)-1)*float32(chartW)
		py := float32(chartY+chartH) - float32(v)*float32(chartH)
		return rl.Vector2{X: px, Y: py}
	}

	prev := toPoint(0, samples[0])
	for i := 1; i < len(samples); i++ {
		cur := toPoint(i, samples[i])
		rl.DrawLineEx(prev, cur, 1.5, m.accent)
		prev = cur
	}
}
