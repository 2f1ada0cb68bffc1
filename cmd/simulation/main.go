// The simulation command runs the flock behind a goakt world actor instead
// of stepping it inline. The game loop only sends messages and renders the
// latest snapshot it received.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pb"
	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/simulation"
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Game renders snapshots published by the world actor.
type Game struct {
	ctx        context.Context
	worldPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot
	cfg        *simulation.Config
}

func (g *Game) Update() error {
	// Retrieve the latest state (non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// Trigger the next simulation step
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: 1.0 / 60.0})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	for _, b := range g.lastState.Boids {
		drawBoid(screen, b)
	}

	if g.cfg.ShowStats {
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nBoids: %d\nStep: %.2fms\nAvg speed: %.2f\nCoherence: %.1f",
			ebiten.ActualFPS(),
			ebiten.ActualTPS(),
			g.lastState.Count,
			float64(g.lastState.StepMicros)/1000.0,
			g.lastState.AverageSpeed,
			g.lastState.Coherence)
		ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-170, 10)
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

// drawBoid renders one snapshot entry as an oriented triangle.
func drawBoid(screen *ebiten.Image, b *pb.BoidState) {
	angle := b.Heading
	c := simulation.UnpackColor(b.Color)

	tipX := b.PositionX + math.Cos(angle)*6
	tipY := b.PositionY + math.Sin(angle)*6
	rightX := b.PositionX + math.Cos(angle+2.5)*5
	rightY := b.PositionY + math.Sin(angle+2.5)*5
	leftX := b.PositionX + math.Cos(angle-2.5)*5
	leftY := b.PositionY + math.Sin(angle-2.5)*5

	cr := float32(c.R) / 255
	cg := float32(c.G) / 255
	cb := float32(c.B) / 255

	vertices := []ebiten.Vertex{
		{DstX: float32(tipX), DstY: float32(tipY), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		{DstX: float32(rightX), DstY: float32(rightY), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		{DstX: float32(leftX), DstY: float32(leftY), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
	}

	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func main() {
	var (
		boids    = flag.Int("boids", 150, "number of boids")
		parallel = flag.Bool("parallel", false, "use the parallel flock update")
		stats    = flag.Bool("stats", true, "show the performance overlay")
		seed     = flag.Uint64("seed", 0, "RNG seed, 0 picks a random one")
	)
	flag.Parse()

	cfg := simulation.DefaultConfig()
	cfg.NumBoids = *boids
	cfg.UseParallel = *parallel
	cfg.ShowStats = *stats
	cfg.Seed = *seed

	ctx := context.Background()

	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(golog.DiscardLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("creating actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("starting actor system: %v", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	snapshotCh := make(chan *pb.FlockSnapshot, 10) // Buffer to avoid blocking
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, cfg))
	if err != nil {
		log.Fatalf("spawning world: %v", err)
	}

	game := &Game{
		ctx:        ctx,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.FlockSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids World (actor driven)")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
