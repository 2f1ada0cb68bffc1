package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/geometry"
)

// NeighborIndex answers "which boids could be within radius of this
// point". Implementations may over-approximate: the steering rules
// re-check exact distances anyway, so a candidate set only has to be a
// superset of the true neighbors. That makes a spatial structure a drop-in
// replacement for the brute-force scan without touching the rules.
type NeighborIndex interface {
	// Rebuild must be called once per step, before any Candidates call,
	// with the current collection.
	Rebuild(boids []*Boid)

	// Candidates appends every boid possibly within radius of pos to buf
	// and returns it. The result is only valid until the next Rebuild.
	Candidates(pos geometry.Vector2D, radius float64, buf []*Boid) []*Boid
}

// ---------------------------------------------------------------------
// Brute force
// ---------------------------------------------------------------------

// allPairsIndex is the O(n) candidate set: everyone. Acceptable for
// hundreds of boids and the reference the grid is checked against.
type allPairsIndex struct {
	boids []*Boid
}

// NewAllPairsIndex returns the brute-force index used by default.
func NewAllPairsIndex() NeighborIndex {
	return &allPairsIndex{}
}

func (a *allPairsIndex) Rebuild(boids []*Boid) {
	a.boids = boids
}

func (a *allPairsIndex) Candidates(pos geometry.Vector2D, radius float64, buf []*Boid) []*Boid {
	return append(buf, a.boids...)
}

// ---------------------------------------------------------------------
// Spatial hash grid
// ---------------------------------------------------------------------

type gridKey struct {
	x, y int
}

// GridIndex hashes boids into square cells sized to the largest influence
// radius in the flock, so a query only scans the cells overlapping the
// query disc instead of the whole collection.
type GridIndex struct {
	grid     map[gridKey][]*Boid
	cellSize float64
}

// NewGridIndex returns an empty spatial hash.
func NewGridIndex() *GridIndex {
	return &GridIndex{grid: make(map[gridKey][]*Boid)}
}

func (g *GridIndex) Rebuild(boids []*Boid) {
	// Reset slices to length 0 but keep capacity, so the underlying
	// arrays are reused and steady-state rebuilds allocate nothing.
	for k := range g.grid {
		g.grid[k] = g.grid[k][:0]
	}

	g.cellSize = cellSizeFor(boids)
	for _, b := range boids {
		key := gridKey{x: int(b.Pos.X / g.cellSize), y: int(b.Pos.Y / g.cellSize)}
		g.grid[key] = append(g.grid[key], b)
	}
}

func (g *GridIndex) Candidates(pos geometry.Vector2D, radius float64, buf []*Boid) []*Boid {
	minGx := int((pos.X - radius) / g.cellSize)
	maxGx := int((pos.X + radius) / g.cellSize)
	minGy := int((pos.Y - radius) / g.cellSize)
	maxGy := int((pos.Y + radius) / g.cellSize)

	for gx := minGx; gx <= maxGx; gx++ {
		for gy := minGy; gy <= maxGy; gy++ {
			if cell, ok := g.grid[gridKey{x: gx, y: gy}]; ok {
				buf = append(buf, cell...)
			}
		}
	}
	return buf
}

// cellSizeFor picks the cell edge from the largest influence radius, with
// a floor of 10 to avoid degenerate tiny cells.
func cellSizeFor(boids []*Boid) float64 {
	size := 10.0
	for _, b := range boids {
		size = math.Max(size, b.influenceRadius())
	}
	return size
}
