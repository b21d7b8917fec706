package testutil

import (
	"math/big"
	"math/rand"
	"sync"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Width returns a pseudo-random width in [0, maxWidth].
func (r *RNG) Width(maxWidth int) int {
	return r.Intn(maxWidth + 1)
}

// Value returns a pseudo-random non-negative value below 2^width.
func (r *RNG) Value(width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(width))

	r.mu.Lock()
	defer r.mu.Unlock()
	return new(big.Int).Rand(r.rand, limit)
}

// SignedValue returns a pseudo-random value with magnitude below 2^width.
func (r *RNG) SignedValue(width int) *big.Int {
	x := r.Value(width)
	if r.Intn(2) == 1 {
		x.Neg(x)
	}
	return x
}

// Bits returns n pseudo-random bits.
func (r *RNG) Bits(n int) []int {
	bits := make([]int, n)
	for i := range bits {
		bits[i] = r.Intn(2)
	}
	return bits
}
