package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sorting"
	"github.com/san-kum/sortvis/internal/viz"
)

const (
	titleY     = 5
	titleSize  = 30
	legendSize = 20
	statusSize = 10
)

var legendY = [2]int32{45, 75}

var bindings = []struct {
	key    int32
	intent engine.Intent
}{
	{rl.KeyR, engine.ResetIntent()},
	{rl.KeySpace, engine.StartIntent()},
	{rl.KeyA, engine.DirectionIntent(sorting.Ascending)},
	{rl.KeyD, engine.DirectionIntent(sorting.Descending)},
	{rl.KeyI, engine.AlgorithmIntent("insertion")},
	{rl.KeyB, engine.AlgorithmIntent("bubble")},
	{rl.KeyQ, engine.AlgorithmIntent("quick")},
	{rl.KeyM, engine.AlgorithmIntent("merge")},
}

// App is the window front end. The window has the configured viewport size
// and the frame loop runs at the configured tick rate.
type App struct {
	ctrl    *engine.Controller
	cfg     *config.Config
	pending *config.Config
	theme   viz.Theme
	reloads <-chan viz.ConfigMsg
	notice  string
	log     *slog.Logger
}

func NewApp(ctrl *engine.Controller, cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{
		ctrl:  ctrl,
		cfg:   cfg.Clone(),
		theme: viz.GetTheme(cfg.Theme),
		log:   log,
	}
}

// Reloads sets the channel polled once per frame for configuration updates.
func (a *App) Reloads(ch <-chan viz.ConfigMsg) { a.reloads = ch }

func (a *App) initWindow() {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(a.cfg.Width), int32(a.cfg.Height), "Sorting Algorithm Visualizer")
	rl.SetTargetFPS(int32(a.cfg.TickRate))
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	a.initWindow()
	defer rl.CloseWindow()
	a.log.Info("window opened", "width", a.cfg.Width, "height", a.cfg.Height, "fps", a.cfg.TickRate)
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.pollReload()

	if rl.IsKeyPressed(rl.KeyT) {
		a.theme = viz.NextTheme(a.theme.Name)
	}
	for _, b := range bindings {
		if rl.IsKeyPressed(b.key) {
			a.ctrl.Apply(b.intent)
		}
	}

	if a.ctrl.Mode() == engine.Running {
		a.ctrl.Tick()
	}
	a.applyPending()
}

func (a *App) pollReload() {
	if a.reloads == nil {
		return
	}
	select {
	case msg := <-a.reloads:
		if msg.Err != nil {
			a.notice = "config: " + msg.Err.Error()
			a.log.Warn("config reload failed", "err", msg.Err)
			return
		}
		a.pending = msg.Config
	default:
	}
}

func (a *App) applyPending() {
	if a.pending == nil || a.ctrl.Mode() != engine.Idle {
		return
	}
	cfg := a.pending
	a.pending = nil

	if cfg.ShapeChanged(a.cfg) {
		if err := a.ctrl.Reshape(cfg.N, cfg.MinVal, cfg.MaxVal); err != nil {
			a.notice = "config: " + err.Error()
			return
		}
		a.ctrl.Reset()
	}
	if err := a.ctrl.SelectAlgorithm(cfg.Algorithm); err != nil {
		a.notice = "config: " + err.Error()
		return
	}
	if err := a.ctrl.SetDirection(cfg.SortDirection()); err != nil {
		a.notice = "config: " + err.Error()
		return
	}
	if cfg.TickRate != a.cfg.TickRate {
		rl.SetTargetFPS(int32(cfg.TickRate))
	}
	// The window keeps its size; bars are laid out in the new viewport and
	// clipped by the window.
	a.cfg = cfg.Clone()
	a.theme = viz.GetTheme(cfg.Theme)
	a.notice = "config reloaded"
}

func (a *App) Draw() {
	data := a.ctrl.Dataset()
	layout := viz.NewLayout(a.cfg.Width, a.cfg.Height, data)
	f := viz.Project(layout, data.Values(), a.ctrl.Highlights(), a.ctrl.Algorithm().Name, a.ctrl.Direction())

	rl.BeginDrawing()
	rl.ClearBackground(toColor(a.theme.Background))

	a.drawCentered(f.Title, f.Width, titleY, titleSize, a.theme.Title)
	for i, line := range f.Legend {
		a.drawCentered(line, f.Width, legendY[i], legendSize, a.theme.Text)
	}
	for _, b := range f.Bars {
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), toColor(a.theme.BarColor(b)))
	}
	a.drawStatus(f)

	rl.EndDrawing()
}

func (a *App) drawCentered(text string, width int, y int32, size int32, c viz.RGB) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(width)/2-w/2, y, size, toColor(c))
}

func (a *App) drawStatus(f viz.Frame) {
	st := a.ctrl.Stats()
	s := fmt.Sprintf("%s  steps %d  writes %d  %s", a.ctrl.Mode(), st.Steps, st.Mutations, a.theme.Name)
	if a.notice != "" {
		s += "  " + a.notice
	}
	rl.DrawText(s, 10, int32(f.Field.Y)-statusSize-4, statusSize, toColor(a.theme.Text))
}

func toColor(c viz.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
