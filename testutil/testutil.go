package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/photonkd/internal/kdtree"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// direction draws incoming angles: phi in [0, 2π), theta in [0, π).
func (r *RNG) direction() (phi, theta float64) {
	return r.rand.Float64() * 2 * math.Pi, r.rand.Float64() * math.Pi
}

// UniformPoints generates photons uniformly distributed in the cube [minVal, maxVal)^3.
func (r *RNG) UniformPoints(num int, minVal, maxVal float64) []kdtree.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	points := make([]kdtree.Point, num)
	for i := range points {
		phi, theta := r.direction()
		points[i] = kdtree.Point{
			X:     minVal + r.rand.Float64()*span,
			Y:     minVal + r.rand.Float64()*span,
			Z:     minVal + r.rand.Float64()*span,
			Phi:   phi,
			Theta: theta,
		}
	}
	return points
}

// GaussianPoints generates photons whose coordinates follow independent normal
// distributions with the given per-axis standard deviations.
// Useful to steer which axis the builder picks.
func (r *RNG) GaussianPoints(num int, sx, sy, sz float64) []kdtree.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]kdtree.Point, num)
	for i := range points {
		phi, theta := r.direction()
		points[i] = kdtree.Point{
			X:     r.rand.NormFloat64() * sx,
			Y:     r.rand.NormFloat64() * sy,
			Z:     r.rand.NormFloat64() * sz,
			Phi:   phi,
			Theta: theta,
		}
	}
	return points
}

// ClusteredPoints generates photons around random centers in the unit cube,
// the way caustics concentrate photons on small surface patches.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64) []kdtree.Point {
	centers := r.UniformPoints(clusters, 0, 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]kdtree.Point, num)
	for i := range points {
		c := centers[i%clusters]
		phi, theta := r.direction()
		points[i] = kdtree.Point{
			X:     c.X + r.rand.NormFloat64()*spread,
			Y:     c.Y + r.rand.NormFloat64()*spread,
			Z:     c.Z + r.rand.NormFloat64()*spread,
			Phi:   phi,
			Theta: theta,
		}
	}
	return points
}

// Shuffle randomizes the order of points in place.
func (r *RNG) Shuffle(points []kdtree.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}

// SamePoints reports whether a and b hold the same positions as multisets,
// comparing coordinates exactly.
func SamePoints(a, b []kdtree.Point) bool {
	if len(a) != len(b) {
		return false
	}
	type key struct{ x, y, z float64 }
	counts := make(map[key]int, len(a))
	for _, p := range a {
		counts[key{p.X, p.Y, p.Z}]++
	}
	for _, p := range b {
		k := key{p.X, p.Y, p.Z}
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}
