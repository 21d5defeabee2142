package invoice

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestNumberGenerator_Deterministic(t *testing.T) {
	clock := fixedClock{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	gen := NewNumberGenerator(clock, func(n int) int {
		assert.Equal(t, 10000, n)
		return 42
	})

	assert.Equal(t, "20260901-0042", gen.Next())
	assert.Equal(t, "20260901-0042", gen.Next())
}

func TestNumberGenerator_Format(t *testing.T) {
	gen := NewNumberGenerator(nil, nil)

	pattern := regexp.MustCompile(`^\d{8}-\d{4}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, gen.Next())
	}
}

func TestNumberGenerator_ZeroPadsRandomComponent(t *testing.T) {
	clock := fixedClock{t: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}

	gen := NewNumberGenerator(clock, func(int) int { return 7 })
	assert.Equal(t, "20260102-0007", gen.Next())

	gen = NewNumberGenerator(clock, func(int) int { return 9999 })
	assert.Equal(t, "20260102-9999", gen.Next())
}
