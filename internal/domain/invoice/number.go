package invoice

import (
	"fmt"
	"math/rand"
	"time"
)

// Clock abstracts wall-clock access so number generation is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NumberGenerator produces invoice numbers of the form YYYYMMDD-NNNN
// where NNNN is a zero-padded random component in [0, 10000).
//
// Numbers are unique enough for untracked documents only: the random
// component collides with probability 1/10000 per generation. Callers
// that need stronger guarantees must de-duplicate themselves.
type NumberGenerator struct {
	clock Clock
	intn  func(n int) int
}

// NewNumberGenerator creates a generator. A nil clock falls back to the
// system clock and a nil intn to math/rand.
func NewNumberGenerator(clock Clock, intn func(n int) int) *NumberGenerator {
	if clock == nil {
		clock = systemClock{}
	}
	if intn == nil {
		intn = rand.Intn
	}
	return &NumberGenerator{clock: clock, intn: intn}
}

// Next returns a fresh invoice number.
func (g *NumberGenerator) Next() string {
	return fmt.Sprintf("%s-%04d", g.clock.Now().Format("20060102"), g.intn(10000))
}
