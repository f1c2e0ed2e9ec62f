// Path preview tool - inspect the embedded flow curves in 3D.
//
// Usage: go run ./cmd/pathpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tmorel/basalviz/camera"
	"github.com/tmorel/basalviz/geom"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	panelWidth   = 260
)

var curveColors = []rl.Color{
	{R: 255, G: 107, B: 74, A: 255},
	{R: 74, G: 222, B: 128, A: 255},
	{R: 80, G: 120, B: 200, A: 255},
	{R: 230, G: 200, B: 90, A: 255},
	{R: 190, G: 110, B: 220, A: 255},
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Path Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	curves := geom.DefaultPaths()

	cam := camera.New(0.35, 6.0, 2.0, 14.0)
	cam.TargetY = 0.4

	samples := float32(48)
	markerT := float32(0)
	animating := true

	for !rl.WindowShouldClose() {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			d := rl.GetMouseDelta()
			cam.Rotate(float64(d.X)*0.006, -float64(d.Y)*0.006)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.Zoom(-float64(wheel) * 0.5)
		}
		if animating {
			markerT += rl.GetFrameTime() * 0.1
			markerT = float32(math.Mod(float64(markerT), 1))
		}

		x, y, z := cam.Position()
		rcam := rl.NewCamera3D(
			rl.NewVector3(float32(x), float32(y), float32(z)),
			rl.NewVector3(float32(cam.TargetX), float32(cam.TargetY), float32(cam.TargetZ)),
			rl.NewVector3(0, 1, 0),
			45,
			rl.CameraPerspective,
		)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 8, G: 9, B: 15, A: 255})

		rl.BeginMode3D(rcam)
		rl.DrawGrid(10, 0.5)
		for ci, c := range curves {
			col := curveColors[ci%len(curveColors)]
			n := int(samples)
			prev := c.PointAt(0)
			for i := 1; i <= n; i++ {
				cur := c.PointAt(float64(i) / float64(n))
				rl.DrawLine3D(
					rl.Vector3{X: float32(prev.X), Y: float32(prev.Y), Z: float32(prev.Z)},
					rl.Vector3{X: float32(cur.X), Y: float32(cur.Y), Z: float32(cur.Z)},
					col,
				)
				prev = cur
			}
			m := c.PointAt(float64(markerT))
			rl.DrawSphere(rl.Vector3{X: float32(m.X), Y: float32(m.Y), Z: float32(m.Z)}, 0.04, col)
		}
		rl.EndMode3D()

		panelX := float32(windowWidth - panelWidth - 10)
		panelY := float32(10)

		rl.DrawText("Flow Path Preview", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35
		rl.DrawText(fmt.Sprintf("%d curves loaded", len(curves)), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 25

		rl.DrawText("Curve samples", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		samples = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"8", "128",
			samples, 8, 128,
		)
		rl.DrawText(fmt.Sprintf("%d", int(samples)), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.Gray)
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}

		rl.DrawText("drag: orbit   wheel: zoom", 10, windowHeight-24, 14, rl.Gray)
		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
