package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/heatsim/internal/diffusion"
)

func (a *App) DrawHUD() {
	x := int(a.width) - hudWidth + 20
	a.drawText(a.Title, x, 20, 24, ColSelect)

	status, col := "RUNNING", ColSelect
	switch {
	case a.Diverged:
		status, col = "DIVERGED", ColWarn
	case !a.Running:
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, x, 54, 16, col)

	stats := a.Grid.Field().Stats()
	lines := []string{
		fmt.Sprintf("step   %d", a.Grid.Steps()),
		fmt.Sprintf("alpha  %.4f", a.Grid.Alpha()),
		fmt.Sprintf("min    %.4f", stats.Min),
		fmt.Sprintf("max    %.4f", stats.Max),
		fmt.Sprintf("mean   %.6f", stats.Mean),
		fmt.Sprintf("speed  %dx", a.StepsPerFrame),
		fmt.Sprintf("color  %s", a.Palette.Name),
	}
	for i, line := range lines {
		a.drawText(line, x, 90+i*20, 14, ColText)
	}
	if !diffusion.Stable(a.Grid.Alpha()) {
		a.drawText("alpha > 0.25: unstable", x, 90+len(lines)*20, 14, ColWarn)
	}

	a.DrawTelemetry(x, 260, hudWidth-40, 50)

	a.drawText("[SPACE] PAUSE  [N] STEP", x, int(a.height)-70, 12, ColTextDim)
	a.drawText("[R] RESET  [P] PALETTE", x, int(a.height)-52, 12, ColTextDim)
	a.drawText("[UP/DOWN] SPEED  [Q] QUIT", x, int(a.height)-34, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), x, int(a.height)-16, 12, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots the mean temperature history as a line strip.
func (a *App) DrawTelemetry(rectX, rectY, width, height int) {
	if len(a.Telemetry) < 2 {
		return
	}

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("mean %.2e", a.Telemetry[len(a.Telemetry)-1]), rectX, rectY+height+6, 12, ColText)
}
