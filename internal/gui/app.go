package gui

import (
	"context"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/sim"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColWarn    = rl.NewColor(255, 170, 0, 255)
)

const (
	hudWidth        = 260
	telemetryLength = 400
)

type Options struct {
	Title         string
	Palette       string
	Scale         int
	FPS           int
	StepsPerFrame int
}

// App owns the window and drives the grid: one Update steps the simulation,
// one Draw pushes every cell through the palette into a texture.
type App struct {
	Grid          *diffusion.Grid
	Palette       colormap.Palette
	Title         string
	Scale         int
	StepsPerFrame int
	Running       bool
	Diverged      bool
	Telemetry     []float64
	Font          rl.Font

	driver  *sim.Simulator
	quit    bool
	pixels  []color.RGBA
	texture rl.Texture2D
	width   int32
	height  int32
}

func initWindow(title string, w, h int32, fps int) {
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono from the system path. raylib falls back to
// its built-in font when the file is missing.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func newApp(grid *diffusion.Grid, opts Options) *App {
	pal, err := colormap.Get(opts.Palette)
	if err != nil {
		pal = colormap.Inferno
	}
	w, h := grid.Width(), grid.Height()

	img := rl.GenImageColor(w, h, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &App{
		Grid:          grid,
		Palette:       pal,
		Title:         opts.Title,
		Scale:         opts.Scale,
		StepsPerFrame: opts.StepsPerFrame,
		Running:       true,
		Telemetry:     make([]float64, 0, telemetryLength),
		Font:          loadFont(),
		driver:        sim.New(grid),
		pixels:        make([]color.RGBA, w*h),
		texture:       tex,
		width:         int32(w*opts.Scale + hudWidth),
		height:        int32(max(h*opts.Scale, 360)),
	}
}

// Run opens a window for grid and blocks until it is closed.
func Run(grid *diffusion.Grid, opts Options) {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.StepsPerFrame <= 0 {
		opts.StepsPerFrame = 1
	}
	if opts.Title == "" {
		opts.Title = "heatsim"
	}

	w := int32(grid.Width()*opts.Scale + hudWidth)
	h := int32(max(grid.Height()*opts.Scale, 360))
	initWindow(opts.Title, w, h, opts.FPS)
	defer rl.CloseWindow()

	app := newApp(grid, opts)
	defer rl.UnloadTexture(app.texture)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Grid.Reset()
		a.Diverged = false
		a.Telemetry = a.Telemetry[:0]
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Palette = colormap.Next(a.Palette.Name)
	}
	if rl.IsKeyPressed(rl.KeyUp) && a.StepsPerFrame < 64 {
		a.StepsPerFrame *= 2
	}
	if rl.IsKeyPressed(rl.KeyDown) && a.StepsPerFrame > 1 {
		a.StepsPerFrame /= 2
	}

	switch {
	case a.Running:
		a.step(a.StepsPerFrame)
	case rl.IsKeyPressed(rl.KeyN):
		a.step(1)
	}
}

func (a *App) step(n int) {
	_ = a.driver.RunWithCallback(context.Background(), n, func(_ int, g sim.Stepper) bool {
		if g.Field().IsFinite() {
			return true
		}
		a.Running = false
		a.Diverged = true
		return false
	})
	a.Telemetry = append(a.Telemetry, a.Grid.Field().Stats().Mean)
	if len(a.Telemetry) > telemetryLength {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Draw() {
	export.FillRGBA(a.pixels, a.Grid.Field(), a.Palette)
	rl.UpdateTexture(a.texture, a.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	rl.DrawTextureEx(a.texture, rl.NewVector2(0, 0), 0, float32(a.Scale), rl.White)
	a.DrawHUD()
	rl.EndDrawing()
}
