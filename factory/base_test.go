package factory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManyIsZeroBasedAndOrdered(t *testing.T) {
	f := NewBaseFactory(func(seq int64) string {
		return fmt.Sprintf("item %d", seq)
	})

	items, err := f.BuildMany(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"item 0", "item 1", "item 2"}, items)

	assert.Equal(t, "item 3", f.Build())
}

func TestBuildManyZero(t *testing.T) {
	f := NewBaseFactory(func(seq int64) int64 { return seq })

	items, err := f.BuildMany(0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBuildManyRejectsNegative(t *testing.T) {
	f := NewBaseFactory(func(seq int64) int64 { return seq })

	_, err := f.BuildMany(-1)
	assert.ErrorIs(t, err, ErrNegativeCount)
}
