package flock

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/geometry"
)

func TestGridIndex_Rebuild(t *testing.T) {
	// Default radii put the cell size at the cohesion radius (50).
	boids := []*Boid{
		testBoid(25, 25, 0, 0),   // cell 0,0
		testBoid(75, 25, 0, 0),   // cell 1,0
		testBoid(25, 75, 0, 0),   // cell 0,1
		testBoid(125, 125, 0, 0), // cell 2,2
	}

	g := NewGridIndex()
	g.Rebuild(boids)

	contains := func(list []*Boid, b *Boid) bool {
		for _, x := range list {
			if x == b {
				return true
			}
		}
		return false
	}

	cells := []struct {
		key  gridKey
		boid *Boid
	}{
		{gridKey{0, 0}, boids[0]},
		{gridKey{1, 0}, boids[1]},
		{gridKey{0, 1}, boids[2]},
		{gridKey{2, 2}, boids[3]},
	}
	for _, c := range cells {
		if list, ok := g.grid[c.key]; !ok || !contains(list, c.boid) {
			t.Errorf("expected boid at %v in cell %v, got %v", c.boid.Pos, c.key, list)
		}
	}

	if contains(g.grid[gridKey{0, 0}], boids[1]) {
		t.Error("boid leaked into the wrong cell")
	}

	// Rebuild reuses cells without duplicating entries.
	g.Rebuild(boids)
	if got := len(g.grid[gridKey{0, 0}]); got != 1 {
		t.Errorf("cell 0,0 has %d entries after second Rebuild; want 1", got)
	}
}

func TestGridIndex_CandidatesIsSuperset(t *testing.T) {
	f := seededFlock(800, 600, 100, 21)

	brute := NewAllPairsIndex()
	brute.Rebuild(f.Boids)
	grid := NewGridIndex()
	grid.Rebuild(f.Boids)

	for _, b := range f.Boids {
		radius := b.influenceRadius()
		candidates := grid.Candidates(b.Pos, radius, nil)

		inCandidates := make(map[*Boid]bool, len(candidates))
		for _, c := range candidates {
			inCandidates[c] = true
		}

		// Every true neighbor must appear among the grid candidates.
		for _, other := range f.Boids {
			if other == b {
				continue
			}
			if b.Pos.DistanceTo(other.Pos) < radius && !inCandidates[other] {
				t.Fatalf("grid missed neighbor at %v of boid at %v (radius %v)",
					other.Pos, b.Pos, radius)
			}
		}
	}
}

func TestGridIndex_StepMatchesAllPairs(t *testing.T) {
	// Swapping the index changes candidate order, never the accepted
	// neighbor set, so a step under either index lands within float
	// accumulation noise of the other.
	brute, gridded := clonedPair(80, 23)
	gridded.SetNeighborIndex(NewGridIndex())

	for step := 0; step < 5; step++ {
		brute.UpdateSequential()
		gridded.UpdateSequential()
	}
	assertFlocksMatch(t, brute, gridded, 1e-6)
}

func TestAllPairsIndex_ReturnsEveryone(t *testing.T) {
	f := seededFlock(800, 600, 10, 25)

	idx := NewAllPairsIndex()
	idx.Rebuild(f.Boids)
	got := idx.Candidates(geometry.Vector2D{X: 400, Y: 300}, 1, nil)
	if len(got) != 10 {
		t.Fatalf("all-pairs candidates = %d; want 10", len(got))
	}
}

func BenchmarkSequentialWithGridIndex500(b *testing.B) {
	f := benchFlock(500)
	f.SetNeighborIndex(NewGridIndex())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.UpdateSequential()
	}
}
