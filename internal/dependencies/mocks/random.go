package mocks

import "github.com/robalobadob/wordle/internal/dependencies/random"

// MockRandom returns queued values from Intn, then 0.
type MockRandom struct {
	IntnResults []int
	next        int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with the given queue.
func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

// Intn pops the next queued value. Values outside [0, n) are clamped to 0.
func (r *MockRandom) Intn(n int) int {
	if r.next >= len(r.IntnResults) {
		return 0
	}
	v := r.IntnResults[r.next]
	r.next++
	if v < 0 || v >= n {
		return 0
	}
	return v
}
