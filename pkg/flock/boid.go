package flock

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/geometry"
)

// Radius is the visual radius of a boid. The toroidal wrap at the viewport
// edges triggers only once a boid is fully off screen by this margin.
const Radius = 6.0

// Rule weights. Collision avoidance dominates, group-matching and grouping
// are equal, the environmental corridor is a secondary influence. These are
// tuned-by-feel values; changing them changes the observable flock behavior.
const (
	separationWeight = 1.5
	alignmentWeight  = 1.0
	cohesionWeight   = 1.0
	biasWeight       = 0.8
)

// palette holds the colors assigned to boids at spawn time. Presentation
// only, never read by the simulation rules.
var palette = []color.RGBA{
	{R: 90, G: 200, B: 255, A: 255},
	{R: 255, G: 200, B: 90, A: 255},
	{R: 170, G: 255, B: 140, A: 255},
	{R: 255, G: 140, B: 170, A: 255},
	{R: 210, G: 180, B: 255, A: 255},
	{R: 250, G: 250, B: 210, A: 255},
}

// Params are the per-boid caps and influence radii applied to newly
// spawned boids. All boids share the same params by default; the parallel
// kernel detects that uniformity and exploits it.
type Params struct {
	MaxSpeed float64
	MaxForce float64

	SeparationRadius float64
	AlignmentRadius  float64
	CohesionRadius   float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MaxSpeed:         4.0,
		MaxForce:         0.1,
		SeparationRadius: 25.0,
		AlignmentRadius:  50.0,
		CohesionRadius:   50.0,
	}
}

// Boid is a single autonomous agent of the flock. It holds kinematic state
// plus its own caps and radii; it never references other boids directly,
// all neighbor lookups go through the Flock.
type Boid struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	Acc geometry.Vector2D

	MaxSpeed float64
	MaxForce float64

	SeparationRadius float64
	AlignmentRadius  float64
	CohesionRadius   float64

	Color color.RGBA
}

// NewBoid creates a boid at a uniformly random position inside the
// viewport with a random heading and speed. rng is the flock's explicitly
// seeded source, so spawning is reproducible.
func NewBoid(rng *rand.Rand, width, height float64, p Params) *Boid {
	angle := rng.Float64() * 2 * math.Pi
	speed := p.MaxSpeed * (0.5 + 0.5*rng.Float64())
	b := &Boid{
		Pos:   geometry.Vector2D{X: rng.Float64() * width, Y: rng.Float64() * height},
		Vel:   geometry.NewVectorPolar(speed, angle),
		Color: palette[rng.IntN(len(palette))],
	}
	b.applyParams(p)
	return b
}

// NewBoidAt creates a boid at a fixed position; velocity stays random.
func NewBoidAt(rng *rand.Rand, x, y float64, p Params) *Boid {
	angle := rng.Float64() * 2 * math.Pi
	speed := p.MaxSpeed * (0.5 + 0.5*rng.Float64())
	b := &Boid{
		Pos:   geometry.Vector2D{X: x, Y: y},
		Vel:   geometry.NewVectorPolar(speed, angle),
		Color: palette[rng.IntN(len(palette))],
	}
	b.applyParams(p)
	return b
}

func (b *Boid) applyParams(p Params) {
	b.MaxSpeed = p.MaxSpeed
	b.MaxForce = p.MaxForce
	b.SeparationRadius = p.SeparationRadius
	b.AlignmentRadius = p.AlignmentRadius
	b.CohesionRadius = p.CohesionRadius
}

// Heading returns the direction of travel in radians, for the renderer.
func (b *Boid) Heading() float64 {
	return b.Vel.Angle()
}

// ---------------------------------------------------------------------
// Steering rules.
//
// Each rule accumulates neighbor contributions and hands the result to one
// of the shared finalizers below. The parallel kernel in parallel.go feeds
// the exact same finalizers from its snapshot arrays, which keeps the two
// update strategies numerically identical.
// ---------------------------------------------------------------------

// Seek returns a steering force toward target: desired velocity at
// MaxSpeed minus the current velocity, limited to MaxForce. Sitting
// exactly on the target yields a zero force, not a braking force.
func (b *Boid) Seek(target geometry.Vector2D) geometry.Vector2D {
	return seekSteer(b.Pos, b.Vel, target, b.MaxSpeed, b.MaxForce)
}

// Separate returns a steering force away from neighbors closer than
// SeparationRadius. Each contribution points away from the neighbor and is
// weighted inversely by distance, so nearer boids push harder.
func (b *Boid) Separate(neighbors []*Boid) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0
	radSq := b.SeparationRadius * b.SeparationRadius

	for _, other := range neighbors {
		if other == b {
			continue
		}
		distSq := b.Pos.DistanceSquaredTo(other.Pos)
		if distSq > 0 && distSq < radSq {
			d := math.Sqrt(distSq)
			sum = sum.Add(b.Pos.Sub(other.Pos).Normalize().Mul(1 / d))
			count++
		}
	}
	return separationSteer(b.Vel, sum, count, b.MaxSpeed, b.MaxForce)
}

// Align returns a steering force matching the average velocity of
// neighbors within AlignmentRadius. Zero neighbors yields a zero force.
func (b *Boid) Align(neighbors []*Boid) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0
	radSq := b.AlignmentRadius * b.AlignmentRadius

	for _, other := range neighbors {
		if other == b {
			continue
		}
		distSq := b.Pos.DistanceSquaredTo(other.Pos)
		if distSq > 0 && distSq < radSq {
			sum = sum.Add(other.Vel)
			count++
		}
	}
	return alignmentSteer(b.Vel, sum, count, b.MaxSpeed, b.MaxForce)
}

// Cohere returns a steering force toward the average position of
// neighbors within CohesionRadius, by seeking that point. Zero neighbors
// yields a zero force.
func (b *Boid) Cohere(neighbors []*Boid) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0
	radSq := b.CohesionRadius * b.CohesionRadius

	for _, other := range neighbors {
		if other == b {
			continue
		}
		distSq := b.Pos.DistanceSquaredTo(other.Pos)
		if distSq > 0 && distSq < radSq {
			sum = sum.Add(other.Pos)
			count++
		}
	}
	if count == 0 {
		return geometry.Vector2D{}
	}
	return seekSteer(b.Pos, b.Vel, sum.Mul(1/float64(count)), b.MaxSpeed, b.MaxForce)
}

// Bias returns the environmental steering force: a constant rightward
// drift plus a vertical pull toward the preferred flight corridor near the
// top of the viewport. Deliberately capped at half of MaxForce so the
// corridor never overrides collision avoidance.
func (b *Boid) Bias(_, height float64) geometry.Vector2D {
	return biasSteer(b.Pos, b.Vel, height, b.MaxSpeed, b.MaxForce)
}

// ApplyFlocking computes the four steering rules against the given
// neighbor set and accumulates their weighted sum into Acc. It never
// mutates position or velocity; call Update afterwards, once all boids
// have computed their forces from the same snapshot.
func (b *Boid) ApplyFlocking(neighbors []*Boid, width, height float64) {
	sep := b.Separate(neighbors).Mul(separationWeight)
	ali := b.Align(neighbors).Mul(alignmentWeight)
	coh := b.Cohere(neighbors).Mul(cohesionWeight)
	env := b.Bias(width, height).Mul(biasWeight)

	b.Acc = b.Acc.Add(sep).Add(ali).Add(coh).Add(env)
}

// Update integrates one step of motion: velocity picks up the accumulated
// acceleration and is clamped to MaxSpeed, position picks up the velocity,
// and the accumulator resets. Must run exactly once per step, after every
// boid has finished its force computation.
func (b *Boid) Update() {
	b.Vel = b.Vel.Add(b.Acc).Limit(b.MaxSpeed)
	b.Pos = b.Pos.Add(b.Vel)
	b.Acc = geometry.Vector2D{}
}

// WrapBorders teleports a boid that left the viewport by more than its
// visual radius to the opposite edge (toroidal world, no bouncing).
func (b *Boid) WrapBorders(width, height float64) {
	if b.Pos.X < -Radius {
		b.Pos.X = width + Radius
	}
	if b.Pos.Y < -Radius {
		b.Pos.Y = height + Radius
	}
	if b.Pos.X > width+Radius {
		b.Pos.X = -Radius
	}
	if b.Pos.Y > height+Radius {
		b.Pos.Y = -Radius
	}
}

// ---------------------------------------------------------------------
// Shared finalizers. Both the per-boid rules above and the snapshot kernel
// in parallel.go end here, so a steering force is computed by one code
// path only.
// ---------------------------------------------------------------------

// steer turns a desired velocity into a bounded steering force.
func steer(vel, desired geometry.Vector2D, maxForce float64) geometry.Vector2D {
	return desired.Sub(vel).Limit(maxForce)
}

// seekSteer is Seek for explicit state: desired velocity toward target at
// maxSpeed, minus vel, limited to maxForce.
func seekSteer(pos, vel, target geometry.Vector2D, maxSpeed, maxForce float64) geometry.Vector2D {
	desired := target.Sub(pos)
	if desired.LenSqr() == 0 {
		return geometry.Vector2D{}
	}
	return steer(vel, desired.Normalize().Mul(maxSpeed), maxForce)
}

// separationSteer finalizes the separation accumulator: average the flee
// contributions and, if the average is non-zero, convert it into a
// steering force the same way Seek does.
func separationSteer(vel, sum geometry.Vector2D, count int, maxSpeed, maxForce float64) geometry.Vector2D {
	if count == 0 {
		return geometry.Vector2D{}
	}
	avg := sum.Mul(1 / float64(count))
	if avg.LenSqr() == 0 {
		return geometry.Vector2D{}
	}
	return steer(vel, avg.Normalize().Mul(maxSpeed), maxForce)
}

// alignmentSteer finalizes the alignment accumulator.
func alignmentSteer(vel, sum geometry.Vector2D, count int, maxSpeed, maxForce float64) geometry.Vector2D {
	if count == 0 {
		return geometry.Vector2D{}
	}
	avg := sum.Mul(1 / float64(count))
	return steer(vel, avg.Normalize().Mul(maxSpeed), maxForce)
}

// biasSteer computes the environmental corridor force from explicit state.
// The corridor sits in the upper band of the viewport: boids below 30% of
// the height get pulled up proportionally to how far past the line they
// are, boids above it get a small constant downward nudge so they do not
// pile up along the top edge. The magnitude grows with the distance from
// the ideal band at 20% of the height, and the force is limited to half of
// maxForce.
func biasSteer(pos, vel geometry.Vector2D, height, maxSpeed, maxForce float64) geometry.Vector2D {
	upperBand := 0.3 * height

	raw := geometry.Vector2D{X: 0.5}
	if pos.Y > upperBand {
		raw.Y = -(pos.Y - upperBand) * 0.8
	} else {
		raw.Y = 0.15
	}

	idealBand := 0.2 * height
	normDist := math.Abs(pos.Y-idealBand) / (0.5 * height)
	desired := raw.Normalize().Mul(maxSpeed * (0.3 + 0.5*normDist))

	return steer(vel, desired, maxForce/2)
}
