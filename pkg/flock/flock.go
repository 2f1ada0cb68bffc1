package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/geometry"
)

// Flock owns the boid collection and the viewport it lives in. The slice
// keeps append order; shrinking drops boids from the tail, so the oldest
// survive.
//
// A Flock is not safe for concurrent use: the caller (game loop or world
// actor) serializes steps, structural mutation and statistics reads. One
// step never overlaps the next, since every step reads the state the
// previous one produced.
type Flock struct {
	Boids []*Boid

	width  float64
	height float64

	rng    *rand.Rand
	params Params

	index   NeighborIndex
	candBuf []*Boid

	// Worker count for UpdateParallel. Zero means runtime.NumCPU.
	workers int

	snap snapshot
}

// New creates an empty flock over a viewport. Dimensions must be positive
// (enforced by the configuration layer before construction). rng is the
// only entropy source of the simulation; seed it explicitly for
// reproducible runs, or pass nil for an arbitrary seed.
func New(width, height float64, rng *rand.Rand) *Flock {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Flock{
		width:  width,
		height: height,
		rng:    rng,
		params: DefaultParams(),
		index:  NewAllPairsIndex(),
	}
}

// SetParams changes the caps and radii of every current boid and of all
// boids spawned afterwards.
func (f *Flock) SetParams(p Params) {
	f.params = p
	for _, b := range f.Boids {
		b.applyParams(p)
	}
}

// Params returns the tuning applied to newly spawned boids.
func (f *Flock) Params() Params {
	return f.params
}

// SetNeighborIndex swaps the neighbor-query strategy used by the
// sequential update. Swapping indexes never changes which neighbors a rule
// accepts, only how candidates are found.
func (f *Flock) SetNeighborIndex(idx NeighborIndex) {
	f.index = idx
}

// SetWorkers fixes the goroutine count of the parallel update. Zero
// restores the default (one per CPU).
func (f *Flock) SetWorkers(n int) {
	f.workers = n
}

// Bounds returns the current viewport dimensions.
func (f *Flock) Bounds() (width, height float64) {
	return f.width, f.height
}

// Initialize replaces the whole population with count freshly spawned
// boids at random positions.
func (f *Flock) Initialize(count int) {
	f.Boids = f.Boids[:0]
	for i := 0; i < count; i++ {
		f.Boids = append(f.Boids, NewBoid(f.rng, f.width, f.height, f.params))
	}
}

// AddBoidAt spawns one boid at a fixed position.
func (f *Flock) AddBoidAt(x, y float64) {
	f.Boids = append(f.Boids, NewBoidAt(f.rng, x, y, f.params))
}

// AddBoids spawns n boids at random positions.
func (f *Flock) AddBoids(n int) {
	for i := 0; i < n; i++ {
		f.Boids = append(f.Boids, NewBoid(f.rng, f.width, f.height, f.params))
	}
}

// RemoveBoids drops up to n boids from the tail of the collection.
func (f *Flock) RemoveBoids(n int) {
	if n >= len(f.Boids) {
		f.Boids = f.Boids[:0]
		return
	}
	f.Boids = f.Boids[:len(f.Boids)-n]
}

// Resize updates the wrap bounds and the environmental corridor band.
// Takes effect on the next step.
func (f *Flock) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Size returns the current boid count.
func (f *Flock) Size() int {
	return len(f.Boids)
}

// UpdateSequential advances the simulation one step on the calling
// goroutine. Two strict passes: every boid computes its steering forces
// against the current collection first, then every boid integrates and
// wraps. Interleaving the two would make boids react to neighbors that
// already moved within the same step.
func (f *Flock) UpdateSequential() {
	if len(f.Boids) == 0 {
		return
	}

	f.index.Rebuild(f.Boids)
	for _, b := range f.Boids {
		f.candBuf = f.index.Candidates(b.Pos, b.influenceRadius(), f.candBuf[:0])
		b.ApplyFlocking(f.candBuf, f.width, f.height)
	}

	for _, b := range f.Boids {
		b.Update()
		b.WrapBorders(f.width, f.height)
	}
}

// influenceRadius is the largest of the three rule radii, the distance a
// neighbor query must cover.
func (b *Boid) influenceRadius() float64 {
	r := b.SeparationRadius
	if b.AlignmentRadius > r {
		r = b.AlignmentRadius
	}
	if b.CohesionRadius > r {
		r = b.CohesionRadius
	}
	return r
}

// AverageSpeed returns the mean velocity magnitude of the flock, 0 when
// empty.
func (f *Flock) AverageSpeed() float64 {
	if len(f.Boids) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range f.Boids {
		total += b.Vel.Len()
	}
	return total / float64(len(f.Boids))
}

// Coherence returns the mean distance of each boid from the flock
// centroid, 0 for fewer than 2 boids. Lower is tighter.
func (f *Flock) Coherence() float64 {
	if len(f.Boids) < 2 {
		return 0
	}

	var centroid geometry.Vector2D
	for _, b := range f.Boids {
		centroid = centroid.Add(b.Pos)
	}
	centroid = centroid.Mul(1 / float64(len(f.Boids)))

	total := 0.0
	for _, b := range f.Boids {
		total += b.Pos.DistanceTo(centroid)
	}
	return total / float64(len(f.Boids))
}
