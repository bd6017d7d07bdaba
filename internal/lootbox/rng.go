package lootbox

import (
	"math/rand/v2"
	"sync"

	"github.com/osse101/LootDrop_Go/internal/utils"
)

// RandomSource supplies the randomness for draws.
//
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n > 0.
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 global generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return utils.RandomFloat() }

func (globalSource) IntN(n int) int { return utils.RandomInt(0, n-1) }

// DefaultSource returns the process-wide random source.
func DefaultSource() RandomSource { return globalSource{} }

// seededSource is a reproducible source for simulations and tests.
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a deterministic source seeded with seed.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
