package simulation

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/sprite"
	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/ui"
)

// whiteImage is the 1px source texture for batched triangle drawing
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Game drives the flock directly from the Ebiten loop. It owns the
// authoritative state, the cat companion and the tuning panel.
type Game struct {
	flock *flock.Flock
	cat   *sprite.Cat
	cfg   *Config

	width, height float64
	parallel      bool
	showStats     bool
	showTrails    bool
	darkPalette   bool
	showPanel     bool

	background *ebiten.Image // 1px wide gradient column, scaled to the window
	trails     *ebiten.Image

	panel *ui.UIPanel

	// Widget references for easy access
	widgetMaxSpeed   *ui.Slider
	widgetMaxForce   *ui.Slider
	widgetSeparation *ui.Slider
	widgetAlignment  *ui.Slider
	widgetCohesion   *ui.Slider
	widgetBoids      *ui.Slider
	widgetParallel   *ui.Checkbox
	widgetTrails     *ui.Checkbox
	widgetStats      *ui.Checkbox
	widgetDark       *ui.Checkbox

	tabPressed bool

	// Timing instrumentation
	lastStepDuration time.Duration
	updateAvg        float64 // Rolling average in ms
	drawAvg          float64 // Rolling average in ms
}

// NewGame builds the game from a validated config.
func NewGame(cfg *Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	f := flock.New(cfg.WorldWidth, cfg.WorldHeight, rng)
	f.SetParams(cfg.FlockParams())
	f.SetNeighborIndex(flock.NewGridIndex())
	f.SetWorkers(cfg.Workers)
	f.Initialize(cfg.NumBoids)

	g := &Game{
		flock:       f,
		cfg:         cfg,
		width:       cfg.WorldWidth,
		height:      cfg.WorldHeight,
		parallel:    cfg.UseParallel,
		showStats:   cfg.ShowStats,
		showTrails:  cfg.ShowTrails,
		darkPalette: cfg.DarkPalette,
	}

	if cfg.ShowCat {
		g.cat = sprite.NewCat()
		g.cat.PlaceAtBottom(g.width, g.height)
	}

	g.buildPanel()
	g.rebuildBackground()
	return g
}

func (g *Game) buildPanel() {
	panel := ui.NewUIPanel(10, 10, 260, g.height-20, "Flock Tuning (TAB to hide)")

	panel.AddSection("Steering")
	g.widgetMaxSpeed = panel.AddSlider("Max Speed", 1, 10, g.cfg.MaxSpeed)
	g.widgetMaxForce = panel.AddSlider("Max Force", 0.01, 0.5, g.cfg.MaxForce)
	panel.EndSection()

	panel.AddSection("Interaction Radii")
	g.widgetSeparation = panel.AddSlider("Separation", 5, 100, g.cfg.SeparationRadius)
	g.widgetAlignment = panel.AddSlider("Alignment", 10, 150, g.cfg.AlignmentRadius)
	g.widgetCohesion = panel.AddSlider("Cohesion", 10, 150, g.cfg.CohesionRadius)
	panel.EndSection()

	panel.AddSection("Population")
	g.widgetBoids = panel.AddSlider("Boids", 1, 1000, float64(g.cfg.NumBoids))
	panel.EndSection()

	panel.AddSection("Engine & Visualization")
	g.widgetParallel = panel.AddCheckbox("Parallel Update", g.parallel)
	g.widgetTrails = panel.AddCheckbox("Trails", g.showTrails)
	g.widgetStats = panel.AddCheckbox("Show Stats", g.showStats)
	g.widgetDark = panel.AddCheckbox("Dark Palette", g.darkPalette)
	panel.AddButton("Reset Defaults", g.resetDefaults)
	panel.EndSection()

	g.panel = panel
}

func (g *Game) resetDefaults() {
	d := DefaultConfig()
	g.widgetMaxSpeed.Value = d.MaxSpeed
	g.widgetMaxForce.Value = d.MaxForce
	g.widgetSeparation.Value = d.SeparationRadius
	g.widgetAlignment.Value = d.AlignmentRadius
	g.widgetCohesion.Value = d.CohesionRadius
	g.widgetBoids.Value = float64(d.NumBoids)
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(elapsed.Microseconds())/1000.0*0.05
	}()

	g.handlePanelToggle()
	if g.showPanel {
		g.panel.Update()
		g.applyPanelValues()
	}

	// 1. Step the flock
	stepStart := time.Now()
	if g.parallel {
		g.flock.UpdateParallel()
	} else {
		g.flock.UpdateSequential()
	}
	g.lastStepDuration = time.Since(stepStart)

	// 2. Walk the cat, Ebiten ticks at a fixed 60 TPS
	if g.cat != nil {
		g.handleCatClick()
		g.cat.Update(1.0 / 60.0)
		g.cat.ClampToWindow(g.width, g.height)
	}

	return nil
}

func (g *Game) handlePanelToggle() {
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		if !g.tabPressed {
			g.showPanel = !g.showPanel
			g.tabPressed = true
		}
	} else {
		g.tabPressed = false
	}
}

// applyPanelValues pushes the widget state into the flock every tick. The
// setters are cheap so there is no need to diff the slider values.
func (g *Game) applyPanelValues() {
	g.flock.SetParams(flock.Params{
		MaxSpeed:         g.widgetMaxSpeed.Value,
		MaxForce:         g.widgetMaxForce.Value,
		SeparationRadius: g.widgetSeparation.Value,
		AlignmentRadius:  g.widgetAlignment.Value,
		CohesionRadius:   g.widgetCohesion.Value,
	})

	if want := int(g.widgetBoids.Value); want != g.flock.Size() {
		if want > g.flock.Size() {
			g.flock.AddBoids(want - g.flock.Size())
		} else {
			g.flock.RemoveBoids(g.flock.Size() - want)
		}
	}

	g.parallel = g.widgetParallel.Value
	g.showTrails = g.widgetTrails.Value
	g.showStats = g.widgetStats.Value
	if g.darkPalette != g.widgetDark.Value {
		g.darkPalette = g.widgetDark.Value
		g.rebuildBackground()
	}
}

func (g *Game) handleCatClick() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if g.showPanel && g.panel.Contains(float64(mx), float64(my)) {
		return
	}
	g.cat.GoTo(float64(mx), float64(my))
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(elapsed.Microseconds())/1000.0*0.05
	}()

	g.drawBackground(screen)

	if g.showTrails {
		g.drawTrails(screen)
	} else if g.trails != nil {
		g.trails.Clear()
	}

	for _, b := range g.flock.Boids {
		c := b.Color
		if g.darkPalette {
			c = Darken(c)
		}
		drawBoid(screen, b.Pos.X, b.Pos.Y, b.Heading(), c)
	}

	if g.cat != nil {
		g.cat.Draw(screen)
	}

	if g.showPanel {
		g.panel.Draw(screen)
	}

	if g.showStats {
		g.drawStats(screen)
	}
}

// drawBackground scales the prerendered 1px gradient column to the window.
func (g *Game) drawBackground(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.width, g.height/float64(g.background.Bounds().Dy()))
	screen.DrawImage(g.background, op)
}

// drawTrails accumulates faded boid positions on an offscreen layer.
func (g *Game) drawTrails(screen *ebiten.Image) {
	if g.trails == nil ||
		g.trails.Bounds().Dx() != int(g.width) || g.trails.Bounds().Dy() != int(g.height) {
		g.trails = ebiten.NewImage(int(g.width), int(g.height))
	}

	// Fade the previous frames instead of clearing
	fade := color.RGBA{A: 24}
	vector.FillRect(g.trails, 0, 0, float32(g.width), float32(g.height), fade, false)

	for _, b := range g.flock.Boids {
		c := b.Color
		if g.darkPalette {
			c = Darken(c)
		}
		vector.FillRect(g.trails, float32(b.Pos.X)-1, float32(b.Pos.Y)-1, 2, 2, c, false)
	}

	screen.DrawImage(g.trails, nil)
}

func (g *Game) drawStats(screen *ebiten.Image) {
	mode := "sequential"
	if g.parallel {
		mode = "parallel"
	}
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nBoids: %d (%s)\nStep:   %.2fms\nUpdate: %.2fms\nDraw:   %.2fms\nAvg speed: %.2f\nCoherence: %.1f",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.flock.Size(),
		mode,
		float64(g.lastStepDuration.Microseconds())/1000.0,
		g.updateAvg,
		g.drawAvg,
		g.flock.AverageSpeed(),
		g.flock.Coherence())
	ebitenutil.DebugPrintAt(screen, msg, int(g.width)-170, 10)
}

// Layout follows the outside window size so the world resizes with it.
func (g *Game) Layout(w, h int) (int, int) {
	if fw, fh := float64(w), float64(h); fw != g.width || fh != g.height {
		g.width, g.height = fw, fh
		g.flock.Resize(fw, fh)
		if g.cat != nil {
			g.cat.PlaceAtBottom(fw, fh)
		}
	}
	return w, h
}

// rebuildBackground prerenders the sky gradient as a 1x256 column.
func (g *Game) rebuildBackground() {
	top := color.RGBA{R: 110, G: 165, B: 220, A: 255}
	bottom := color.RGBA{R: 235, G: 215, B: 170, A: 255}
	if g.darkPalette {
		top = color.RGBA{R: 8, G: 10, B: 30, A: 255}
		bottom = color.RGBA{R: 35, G: 25, B: 60, A: 255}
	}

	if g.background == nil {
		g.background = ebiten.NewImage(1, 256)
	}
	for y := 0; y < 256; y++ {
		t := float64(y) / 255.0
		g.background.Set(0, y, color.RGBA{
			R: lerpByte(top.R, bottom.R, t),
			G: lerpByte(top.G, bottom.G, t),
			B: lerpByte(top.B, bottom.B, t),
			A: 255,
		})
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// drawBoid renders one boid as an oriented triangle via batched DrawTriangles.
func drawBoid(screen *ebiten.Image, x, y, angle float64, c color.RGBA) {
	tipX := x + math.Cos(angle)*6
	tipY := y + math.Sin(angle)*6
	rightX := x + math.Cos(angle+2.5)*5
	rightY := y + math.Sin(angle+2.5)*5
	leftX := x + math.Cos(angle-2.5)*5
	leftY := y + math.Sin(angle-2.5)*5

	cr := float32(c.R) / 255
	cg := float32(c.G) / 255
	cb := float32(c.B) / 255

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}

	screen.DrawTriangles(vertices, indices, whiteImage, op)
}
