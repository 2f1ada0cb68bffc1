package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pb"
)

func testWorld(numBoids int) *WorldActor {
	cfg := DefaultConfig()
	cfg.WorldWidth = 400
	cfg.WorldHeight = 300
	cfg.NumBoids = numBoids
	cfg.Seed = 7

	w := NewWorldActor(nil, cfg)
	w.initFlock()
	w.flock.Initialize(numBoids)
	return w
}

func TestWorldActor_Step(t *testing.T) {
	w := testWorld(30)

	before := make([]float64, 0, 30)
	for _, b := range w.flock.Boids {
		before = append(before, b.Pos.X)
	}

	w.step()

	if w.lastStep <= 0 {
		t.Error("step duration was not recorded")
	}
	moved := false
	for i, b := range w.flock.Boids {
		if b.Pos.X != before[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("no boid moved after a step")
	}
}

func TestWorldActor_StepParallel(t *testing.T) {
	w := testWorld(30)
	w.parallel = true

	w.step()

	if w.stepCount != 1 {
		t.Errorf("stepCount = %d; want 1", w.stepCount)
	}
	for _, b := range w.flock.Boids {
		speed := b.Vel.Len()
		if speed > b.MaxSpeed+1e-9 {
			t.Fatalf("boid exceeds max speed after parallel step: %v", speed)
		}
	}
}

func TestWorldActor_BuildSnapshot(t *testing.T) {
	w := testWorld(12)
	w.step()

	snap := w.buildSnapshot()

	if snap.Count != 12 || len(snap.Boids) != 12 {
		t.Fatalf("snapshot count = %d (%d states); want 12", snap.Count, len(snap.Boids))
	}
	if snap.StepMicros < 0 {
		t.Errorf("StepMicros = %d; want >= 0", snap.StepMicros)
	}
	if snap.AverageSpeed <= 0 {
		t.Errorf("AverageSpeed = %v; want > 0", snap.AverageSpeed)
	}

	for i, bs := range snap.Boids {
		b := w.flock.Boids[i]
		if bs.PositionX != b.Pos.X || bs.PositionY != b.Pos.Y {
			t.Fatalf("snapshot boid %d position mismatch", i)
		}
		wantHeading := math.Atan2(b.Vel.Y, b.Vel.X)
		if bs.Heading != wantHeading {
			t.Errorf("snapshot boid %d heading = %v; want %v", i, bs.Heading, wantHeading)
		}
		if got := UnpackColor(bs.Color); got != b.Color {
			t.Errorf("snapshot boid %d color = %v; want %v", i, got, b.Color)
		}
	}
}

func TestWorldActor_SnapshotChannelNeverBlocks(t *testing.T) {
	ch := make(chan *pb.FlockSnapshot, 1)
	cfg := DefaultConfig()
	cfg.NumBoids = 5
	cfg.Seed = 3

	w := NewWorldActor(ch, cfg)
	w.initFlock()
	w.flock.Initialize(5)

	// Second push must drop the frame instead of blocking on the full channel.
	w.pushSnapshot()
	w.pushSnapshot()

	select {
	case snap := <-ch:
		if snap.Count != 5 {
			t.Errorf("snapshot count = %d; want 5", snap.Count)
		}
	default:
		t.Fatal("expected one buffered snapshot")
	}
}

func TestUnpackColorRoundTrip(t *testing.T) {
	w := testWorld(1)
	c := w.flock.Boids[0].Color
	if got := UnpackColor(packColor(c)); got != c {
		t.Errorf("round trip = %v; want %v", got, c)
	}
}

func TestConfig_FlockParams(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.FlockParams()

	if p.MaxSpeed != cfg.MaxSpeed || p.MaxForce != cfg.MaxForce {
		t.Error("physics fields not carried over")
	}
	if p.SeparationRadius != cfg.SeparationRadius ||
		p.AlignmentRadius != cfg.AlignmentRadius ||
		p.CohesionRadius != cfg.CohesionRadius {
		t.Error("radii not carried over")
	}
}
