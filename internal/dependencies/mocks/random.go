package mocks

import (
	"strconv"
	"strings"

	"github.com/squadhelper/tryouts/internal/dependencies/random"
)

// MockRandom is a deterministic implementation of Random for testing.
// Tokens and digit strings are generated from an incrementing counter so
// successive calls never collide.
type MockRandom struct {
	counter int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns n-1, the highest value the real implementation could produce
func (r *MockRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

// Token returns prefix + a sequence number
func (r *MockRandom) Token(prefix string) string {
	r.counter++
	return prefix + strconv.Itoa(r.counter)
}

// Digits returns a zero-padded sequence number of the given length
func (r *MockRandom) Digits(length int) string {
	r.counter++
	s := strconv.Itoa(r.counter)
	if len(s) < length {
		s = strings.Repeat("0", length-len(s)) + s
	}
	return s[len(s)-length:]
}
