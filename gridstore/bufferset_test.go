package gridstore_test

import (
	"testing"

	"github.com/katalvlaran/zoidsweep/gridstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := gridstore.New[float64](nil, nil, 2)
	assert.ErrorIs(t, err, gridstore.ErrInvalidDimensions)

	_, err = gridstore.New[float64]([]int{3, 0}, make([]float64, 0), 2)
	assert.ErrorIs(t, err, gridstore.ErrInvalidDimensions)

	tooMany := make([]int, 5)
	_, err = gridstore.New[float64](tooMany, nil, 2)
	assert.ErrorIs(t, err, gridstore.ErrInvalidDimensions)
}

func TestNew_RejectsTooFewCopies(t *testing.T) {
	_, err := gridstore.New[float64]([]int{4}, make([]float64, 4), 1)
	assert.ErrorIs(t, err, gridstore.ErrTooFewCopies)
}

func TestNew_RejectsDataLengthMismatch(t *testing.T) {
	_, err := gridstore.New[float64]([]int{4, 4}, make([]float64, 10), 2)
	assert.ErrorIs(t, err, gridstore.ErrDataLengthMismatch)
}

func TestBufferSet_ElemRoundTrip(t *testing.T) {
	data := make([]float64, 12) // 3x4
	for i := range data {
		data[i] = float64(i)
	}
	bs, err := gridstore.New[float64]([]int{3, 4}, data, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, bs.Width())
	assert.Equal(t, 4, bs.Height())
	assert.Equal(t, 12, bs.Size())
	assert.Equal(t, 2, bs.Copies())

	// row-major: offset(x,y) = x + y*3
	assert.InDelta(t, 7.0, bs.Elem([]int{1, 2}, 0), 0)

	bs.SetElem([]int{1, 2}, 1, 42.0)
	assert.InDelta(t, 42.0, bs.Elem([]int{1, 2}, 1), 0)
	// t and t+copies alias the same physical copy.
	assert.InDelta(t, 42.0, bs.Elem([]int{1, 2}, 3), 0)
}

func TestBufferSet_ElemPanicsOutOfRange(t *testing.T) {
	bs, err := gridstore.New[float64]([]int{3, 4}, make([]float64, 12), 2)
	require.NoError(t, err)

	assert.Panics(t, func() { bs.Elem([]int{3, 0}, 0) })
	assert.Panics(t, func() { bs.Elem([]int{-1, 0}, 0) })
	assert.Panics(t, func() { bs.Elem([]int{0}, 0) })
}

func TestBufferSet_DepthPanicsBelow3D(t *testing.T) {
	bs, err := gridstore.New[float64]([]int{3, 4}, make([]float64, 12), 2)
	require.NoError(t, err)

	assert.Panics(t, func() { bs.Depth() })
}

func TestBufferSet_GlobalRegionCoversWholeGrid(t *testing.T) {
	bs, err := gridstore.New[float64]([]int{5, 7}, make([]float64, 35), 2)
	require.NoError(t, err)

	region := bs.GlobalRegion()
	assert.Equal(t, []int{0, 0}, region.A)
	assert.Equal(t, []int{5, 7}, region.B)
}

func TestBufferSet_TakeOwnershipInvalidatesSource(t *testing.T) {
	bs, err := gridstore.New[float64]([]int{4}, make([]float64, 4), 2)
	require.NoError(t, err)

	moved := bs.TakeOwnership()
	assert.Panics(t, func() { bs.Elem([]int{0}, 0) })
	assert.NotPanics(t, func() { moved.Elem([]int{0}, 0) })
}

func TestBufferSet_InvalidateBlocksFurtherAccess(t *testing.T) {
	bs, err := gridstore.New[float64]([]int{4}, make([]float64, 4), 2)
	require.NoError(t, err)

	bs.Invalidate()
	assert.Panics(t, func() { bs.Size() })
}

// invariant #5: Pointer(0) reflects exactly the seed data passed to New.
func TestNew_BufferRoundTrip(t *testing.T) {
	seed := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	bs, err := gridstore.New[float64]([]int{8}, seed, 2)
	require.NoError(t, err)

	assert.Equal(t, seed, bs.Pointer(0))
}

func TestEqual(t *testing.T) {
	a, err := gridstore.New[int]([]int{2, 2}, []int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	b, err := gridstore.New[int]([]int{2, 2}, []int{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	assert.True(t, gridstore.Equal(a, b))

	b.SetElem([]int{0, 0}, 0, 99)
	assert.False(t, gridstore.Equal(a, b))
}
