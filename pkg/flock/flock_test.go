package flock

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/geometry"
)

// seededFlock builds a flock whose spawning is fully reproducible.
func seededFlock(width, height float64, count int, seed uint64) *Flock {
	f := New(width, height, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	f.Initialize(count)
	return f
}

func TestFlock_Initialize(t *testing.T) {
	f := seededFlock(800, 600, 25, 1)
	if f.Size() != 25 {
		t.Fatalf("Size after Initialize(25) = %d", f.Size())
	}

	// Initialize replaces, never appends.
	f.Initialize(10)
	if f.Size() != 10 {
		t.Fatalf("Size after re-Initialize(10) = %d", f.Size())
	}
}

func TestFlock_AddRemove(t *testing.T) {
	f := seededFlock(800, 600, 5, 2)

	f.AddBoids(3)
	if f.Size() != 8 {
		t.Fatalf("Size after AddBoids(3) = %d; want 8", f.Size())
	}

	f.AddBoidAt(123, 45)
	last := f.Boids[f.Size()-1]
	if last.Pos != (geometry.Vector2D{X: 123, Y: 45}) {
		t.Errorf("AddBoidAt position = %v; want (123, 45)", last.Pos)
	}

	// Removal drops from the tail: survivors come from the front of
	// insertion order.
	front := f.Boids[0]
	f.RemoveBoids(4)
	if f.Size() != 5 {
		t.Fatalf("Size after RemoveBoids(4) = %d; want 5", f.Size())
	}
	if f.Boids[0] != front {
		t.Error("RemoveBoids must not touch the front of the collection")
	}

	// Oversized removal empties the flock instead of panicking.
	f.RemoveBoids(100)
	if f.Size() != 0 {
		t.Fatalf("Size after oversized RemoveBoids = %d; want 0", f.Size())
	}
}

func TestFlock_EmptyStepIsNoOp(t *testing.T) {
	f := New(800, 600, nil)
	f.UpdateSequential() // must not panic
	f.UpdateParallel()
	if got := f.AverageSpeed(); got != 0 {
		t.Errorf("AverageSpeed on empty flock = %v; want 0", got)
	}
	if got := f.Coherence(); got != 0 {
		t.Errorf("Coherence on empty flock = %v; want 0", got)
	}
}

func TestFlock_Coherence(t *testing.T) {
	f := New(800, 600, nil)
	f.AddBoidAt(0, 0)
	f.AddBoidAt(10, 0)

	// Centroid at (5, 0), both boids 5 away.
	if got := f.Coherence(); math.Abs(got-5.0) > testEps {
		t.Errorf("Coherence = %v; want 5.0", got)
	}

	f.RemoveBoids(1)
	if got := f.Coherence(); got != 0 {
		t.Errorf("Coherence with a single boid = %v; want 0", got)
	}
}

func TestFlock_AverageSpeed(t *testing.T) {
	f := New(800, 600, nil)
	f.AddBoidAt(0, 0)
	f.AddBoidAt(50, 50)
	f.Boids[0].Vel = geometry.Vector2D{X: 3, Y: 4} // 5
	f.Boids[1].Vel = geometry.Vector2D{X: 0, Y: 1} // 1

	if got := f.AverageSpeed(); math.Abs(got-3.0) > testEps {
		t.Errorf("AverageSpeed = %v; want 3.0", got)
	}
}

func TestFlock_SpeedStaysCapped(t *testing.T) {
	f := seededFlock(800, 600, 60, 3)
	p := f.Params()

	for step := 0; step < 20; step++ {
		f.UpdateSequential()
		for i, b := range f.Boids {
			if got := b.Vel.Len(); got > p.MaxSpeed+testEps {
				t.Fatalf("step %d boid %d: speed %v exceeds MaxSpeed %v", step, i, got, p.MaxSpeed)
			}
		}
	}
}

func TestFlock_Resize(t *testing.T) {
	f := New(800, 600, nil)
	f.Resize(400, 300)

	w, h := f.Bounds()
	if w != 400 || h != 300 {
		t.Fatalf("Bounds after Resize = (%v, %v); want (400, 300)", w, h)
	}

	// New bounds drive the wrap on the very next step. The bias force
	// pushes rightward, so a boid parked past the right margin stays
	// past it through integration and must wrap to the left edge.
	f.AddBoidAt(0, 150)
	b := f.Boids[0]
	b.Pos.X = 400 + Radius + 1
	b.Vel = geometry.Vector2D{}
	f.UpdateSequential()
	if b.Pos.X != -Radius {
		t.Errorf("boid beyond resized bound: x = %v; want %v", b.Pos.X, -Radius)
	}
}

func TestFlock_SetParamsPropagates(t *testing.T) {
	f := seededFlock(800, 600, 5, 4)

	p := f.Params()
	p.MaxSpeed = 2.5
	p.SeparationRadius = 40
	f.SetParams(p)

	for i, b := range f.Boids {
		if b.MaxSpeed != 2.5 || b.SeparationRadius != 40 {
			t.Fatalf("boid %d did not pick up new params", i)
		}
	}

	f.AddBoids(1)
	if b := f.Boids[f.Size()-1]; b.MaxSpeed != 2.5 {
		t.Error("new boid did not pick up new params")
	}
}

// ---------------------------------------------------------------------
// Sequential vs parallel equivalence
// ---------------------------------------------------------------------

func clonedPair(count int, seed uint64) (*Flock, *Flock) {
	// Two flocks spawned from identical PCG streams are identical.
	a := seededFlock(800, 600, count, seed)
	b := seededFlock(800, 600, count, seed)
	return a, b
}

func TestFlock_ParallelMatchesSequential(t *testing.T) {
	for _, count := range []int{0, 1, 2, 50, 500} {
		t.Run(sizeName(count), func(t *testing.T) {
			seq, par := clonedPair(count, 7)

			seq.UpdateSequential()
			par.UpdateParallel()

			assertFlocksMatch(t, seq, par, testEps)
		})
	}
}

func TestFlock_ParallelMatchesSequential_ManySteps(t *testing.T) {
	seq, par := clonedPair(120, 11)
	for step := 0; step < 30; step++ {
		seq.UpdateSequential()
		par.UpdateParallel()
		assertFlocksMatch(t, seq, par, testEps)
		if t.Failed() {
			t.Fatalf("divergence at step %d", step)
		}
	}
}

func TestFlock_ParallelHeterogeneousRadii(t *testing.T) {
	// The shared-squared-radii shortcut must disengage when boids stop
	// sharing radii.
	seq, par := clonedPair(40, 13)
	for i := 0; i < 40; i += 3 {
		seq.Boids[i].SeparationRadius = 10 + float64(i)
		par.Boids[i].SeparationRadius = 10 + float64(i)
		seq.Boids[i].CohesionRadius = 80 - float64(i)
		par.Boids[i].CohesionRadius = 80 - float64(i)
	}

	seq.UpdateSequential()
	par.UpdateParallel()
	assertFlocksMatch(t, seq, par, testEps)
}

func TestFlock_ParallelSingleWorker(t *testing.T) {
	seq, par := clonedPair(50, 17)
	par.SetWorkers(1)

	seq.UpdateSequential()
	par.UpdateParallel()
	assertFlocksMatch(t, seq, par, testEps)
}

func assertFlocksMatch(t *testing.T, a, b *Flock, tol float64) {
	t.Helper()
	if a.Size() != b.Size() {
		t.Fatalf("size mismatch: %d vs %d", a.Size(), b.Size())
	}
	for i := range a.Boids {
		ba, bb := a.Boids[i], b.Boids[i]
		if math.Abs(ba.Pos.X-bb.Pos.X) > tol || math.Abs(ba.Pos.Y-bb.Pos.Y) > tol {
			t.Fatalf("boid %d position mismatch: %v vs %v", i, ba.Pos, bb.Pos)
		}
		if math.Abs(ba.Vel.X-bb.Vel.X) > tol || math.Abs(ba.Vel.Y-bb.Vel.Y) > tol {
			t.Fatalf("boid %d velocity mismatch: %v vs %v", i, ba.Vel, bb.Vel)
		}
	}
}

func sizeName(n int) string {
	switch n {
	case 0:
		return "Empty"
	case 1:
		return "Single"
	default:
		return fmt.Sprintf("N%d", n)
	}
}

// ---------------------------------------------------------------------
// Determinism
// ---------------------------------------------------------------------

func TestFlock_DeterministicWithSeed(t *testing.T) {
	run := func() *Flock {
		f := seededFlock(800, 600, 80, 99)
		for i := 0; i < 25; i++ {
			f.UpdateSequential()
		}
		return f
	}

	a, b := run(), run()
	for i := range a.Boids {
		if a.Boids[i].Pos != b.Boids[i].Pos || a.Boids[i].Vel != b.Boids[i].Vel {
			t.Fatalf("boid %d differs across identically seeded runs: %v/%v vs %v/%v",
				i, a.Boids[i].Pos, a.Boids[i].Vel, b.Boids[i].Pos, b.Boids[i].Vel)
		}
	}
}

// ---------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------

func benchFlock(count int) *Flock {
	return seededFlock(1280, 720, count, 1)
}

func BenchmarkUpdateSequential250(b *testing.B) {
	f := benchFlock(250)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.UpdateSequential()
	}
}

func BenchmarkUpdateParallel250(b *testing.B) {
	f := benchFlock(250)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.UpdateParallel()
	}
}

func BenchmarkUpdateSequential1000(b *testing.B) {
	f := benchFlock(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.UpdateSequential()
	}
}

func BenchmarkUpdateParallel1000(b *testing.B) {
	f := benchFlock(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.UpdateParallel()
	}
}
