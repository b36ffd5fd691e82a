package factory

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNegativeCount is returned by BuildMany when asked for fewer than zero items.
var ErrNegativeCount = errors.New("count must not be negative")

type BaseFactory[T any] struct {
	seq     *int64
	Builder func(seq int64) T
}

// NewBaseFactory creates a new BaseFactory whose sequence starts at zero
func NewBaseFactory[T any](builder func(seq int64) T) *BaseFactory[T] {
	var s int64 = -1
	return &BaseFactory[T]{seq: &s, Builder: builder}
}

func (f *BaseFactory[T]) nextSeq() int64 {
	return atomic.AddInt64(f.seq, 1)
}

// Build creates the next instance in the sequence
func (f *BaseFactory[T]) Build() T {
	seq := f.nextSeq()
	return f.Builder(seq)
}

// BuildMany creates n instances in sequence order
func (f *BaseFactory[T]) BuildMany(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	result := make([]T, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, f.Build())
	}
	return result, nil
}
