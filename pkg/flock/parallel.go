package flock

import (
	"math"
	"runtime"
	"sync"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/geometry"
)

// snapshot holds the flat per-axis copies of the flock state that the
// parallel kernel reads, plus the per-boid output accelerations it writes.
// Workers only ever read the input slices and write disjoint indices of
// the output slices, so no locking is needed inside a phase.
type snapshot struct {
	px, py   []float64
	pvx, pvy []float64

	ax, ay []float64

	// Shared squared radii, valid only when every boid carries the same
	// radii. Recomputed on every capture, so giving boids heterogeneous
	// radii later cannot silently reuse stale values.
	uniform bool
	sepSq   float64
	aliSq   float64
	cohSq   float64
}

func (s *snapshot) capture(boids []*Boid) {
	n := len(boids)
	if cap(s.px) < n {
		s.px = make([]float64, n)
		s.py = make([]float64, n)
		s.pvx = make([]float64, n)
		s.pvy = make([]float64, n)
		s.ax = make([]float64, n)
		s.ay = make([]float64, n)
	}
	s.px = s.px[:n]
	s.py = s.py[:n]
	s.pvx = s.pvx[:n]
	s.pvy = s.pvy[:n]
	s.ax = s.ax[:n]
	s.ay = s.ay[:n]

	for i, b := range boids {
		s.px[i] = b.Pos.X
		s.py[i] = b.Pos.Y
		s.pvx[i] = b.Vel.X
		s.pvy[i] = b.Vel.Y
	}

	first := boids[0]
	s.uniform = true
	for _, b := range boids[1:] {
		if b.SeparationRadius != first.SeparationRadius ||
			b.AlignmentRadius != first.AlignmentRadius ||
			b.CohesionRadius != first.CohesionRadius {
			s.uniform = false
			break
		}
	}
	if s.uniform {
		s.sepSq = first.SeparationRadius * first.SeparationRadius
		s.aliSq = first.AlignmentRadius * first.AlignmentRadius
		s.cohSq = first.CohesionRadius * first.CohesionRadius
	}
}

// UpdateParallel advances the simulation one step using worker goroutines.
// Behaviorally equivalent to UpdateSequential on the same input state: the
// kernel scans the same snapshot every boid sees in the sequential form
// and finalizes forces through the same helpers, so the two strategies
// agree to the last bit.
//
// Two phases with a full barrier between them: (1) read-only force
// computation against the snapshot, writing each boid's acceleration into
// its own output slot; (2) per-boid integration and border wrap. Writes in
// both phases are partitioned one-per-boid, so the WaitGroup barrier is
// the only synchronization.
func (f *Flock) UpdateParallel() {
	n := len(f.Boids)
	if n == 0 {
		return
	}

	f.snap.capture(f.Boids)

	workers := f.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f.accumulateForces(i)
			}
		}(lo, hi)
	}
	wg.Wait()

	// Barrier passed: every force is in the output buffer, no boid state
	// was touched yet. Integration may now run, again one boid per slot.
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				b := f.Boids[i]
				b.Acc = b.Acc.Add(geometry.Vector2D{X: f.snap.ax[i], Y: f.snap.ay[i]})
				b.Update()
				b.WrapBorders(f.width, f.height)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// accumulateForces computes boid i's weighted steering sum from the
// snapshot and stores it in the output buffer. Single scan over the full
// snapshot: the three rule accumulators are independent, so one pass in
// index order produces the same sums as the three passes of the
// sequential rules.
func (f *Flock) accumulateForces(i int) {
	s := &f.snap
	b := f.Boids[i]

	pos := geometry.Vector2D{X: s.px[i], Y: s.py[i]}
	vel := geometry.Vector2D{X: s.pvx[i], Y: s.pvy[i]}

	sepSq, aliSq, cohSq := s.sepSq, s.aliSq, s.cohSq
	if !s.uniform {
		sepSq = b.SeparationRadius * b.SeparationRadius
		aliSq = b.AlignmentRadius * b.AlignmentRadius
		cohSq = b.CohesionRadius * b.CohesionRadius
	}

	var sepSum, aliSum, cohSum geometry.Vector2D
	var sepN, aliN, cohN int

	for j := range s.px {
		if j == i {
			continue
		}
		other := geometry.Vector2D{X: s.px[j], Y: s.py[j]}
		distSq := pos.DistanceSquaredTo(other)
		if distSq == 0 {
			continue
		}
		if distSq < sepSq {
			d := math.Sqrt(distSq)
			sepSum = sepSum.Add(pos.Sub(other).Normalize().Mul(1 / d))
			sepN++
		}
		if distSq < aliSq {
			aliSum = aliSum.Add(geometry.Vector2D{X: s.pvx[j], Y: s.pvy[j]})
			aliN++
		}
		if distSq < cohSq {
			cohSum = cohSum.Add(other)
			cohN++
		}
	}

	sep := separationSteer(vel, sepSum, sepN, b.MaxSpeed, b.MaxForce).Mul(separationWeight)
	ali := alignmentSteer(vel, aliSum, aliN, b.MaxSpeed, b.MaxForce).Mul(alignmentWeight)

	var coh geometry.Vector2D
	if cohN > 0 {
		coh = seekSteer(pos, vel, cohSum.Mul(1/float64(cohN)), b.MaxSpeed, b.MaxForce).Mul(cohesionWeight)
	}
	env := biasSteer(pos, vel, f.height, b.MaxSpeed, b.MaxForce).Mul(biasWeight)

	force := sep.Add(ali).Add(coh).Add(env)
	s.ax[i] = force.X
	s.ay[i] = force.Y
}
