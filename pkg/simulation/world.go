package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pb"
	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/flock"
)

// WorldActor owns the authoritative flock state. The game loop drives it
// with Tick messages and reads back FlockSnapshot frames from the channel,
// so rendering never touches the flock while a step is in flight.
type WorldActor struct {
	flock      *flock.Flock
	snapshotCh chan<- *pb.FlockSnapshot
	cfg        *Config
	parallel   bool

	// Benchmark stats
	stepCount   int
	lastStep    time.Duration
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit
func NewWorldActor(snapshotCh chan<- *pb.FlockSnapshot, cfg *Config) *WorldActor {
	return &WorldActor{
		snapshotCh:  snapshotCh,
		cfg:         cfg,
		parallel:    cfg.UseParallel,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	w.initFlock()
	return nil
}

func (w *WorldActor) initFlock() {
	seed := w.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	w.flock = flock.New(w.cfg.WorldWidth, w.cfg.WorldHeight, rng)
	w.flock.SetParams(w.cfg.FlockParams())
	w.flock.SetNeighborIndex(flock.NewGridIndex())
	w.flock.SetWorkers(w.cfg.Workers)
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		w.flock.Initialize(w.cfg.NumBoids)
		ctx.Logger().Infof("World started with %d boids (parallel=%v)", w.flock.Size(), w.parallel)

	// The main simulation step, driven by the game loop
	case *pb.Tick:
		w.step()
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	case *pb.Resize:
		w.flock.Resize(msg.Width, msg.Height)

	case *pb.AddBoids:
		w.flock.AddBoids(int(msg.Count))

	case *pb.RemoveBoids:
		w.flock.RemoveBoids(int(msg.Count))

	case *pb.SetUpdateMode:
		w.parallel = msg.Parallel
	}
}

func (w *WorldActor) step() {
	start := time.Now()
	if w.parallel {
		w.flock.UpdateParallel()
	} else {
		w.flock.UpdateSequential()
	}
	w.lastStep = time.Since(start)
	w.stepCount++
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("STEP RATE: %d/sec | boids: %d | last step: %v | parallel: %v",
			w.stepCount, w.flock.Size(), w.lastStep, w.parallel)
		w.stepCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot() *pb.FlockSnapshot {
	boids := w.flock.Boids
	snapshot := &pb.FlockSnapshot{
		Boids:        make([]*pb.BoidState, 0, len(boids)),
		AverageSpeed: w.flock.AverageSpeed(),
		Coherence:    w.flock.Coherence(),
		Count:        int32(len(boids)),
		Parallel:     w.parallel,
		StepMicros:   w.lastStep.Microseconds(),
	}

	for _, b := range boids {
		snapshot.Boids = append(snapshot.Boids, &pb.BoidState{
			PositionX: b.Pos.X,
			PositionY: b.Pos.Y,
			VelocityX: b.Vel.X,
			VelocityY: b.Vel.Y,
			Heading:   b.Heading(),
			Color:     packColor(b.Color),
		})
	}

	return snapshot
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
