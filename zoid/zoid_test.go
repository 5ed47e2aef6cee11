package zoid_test

import (
	"testing"

	"github.com/katalvlaran/zoidsweep/zoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertical(dims []int) zoid.Zoid {
	d := len(dims)
	a := make([]int, d)
	da := make([]int, d)
	db := make([]int, d)
	return zoid.New(a, dims, da, db)
}

func TestZoid_BaseAndTopWidth(t *testing.T) {
	z := zoid.New([]int{0}, []int{10}, []int{1}, []int{-1})
	assert.Equal(t, 10, z.BaseWidth(0))
	// after 3 steps each side moved inward by 1 per step: width shrinks by 2*3
	assert.Equal(t, 4, z.TopWidth(0, 3))
}

func TestZoid_BoundsAt(t *testing.T) {
	z := zoid.New([]int{0}, []int{10}, []int{1}, []int{-1})
	lo, hi := z.BoundsAt(0, 2)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 8, hi)
}

func TestZoid_Empty(t *testing.T) {
	z := zoid.New([]int{5}, []int{5}, []int{0}, []int{0})
	assert.True(t, z.Empty())

	z2 := zoid.New([]int{0}, []int{1}, []int{0}, []int{0})
	assert.False(t, z2.Empty())
}

func TestZoid_New_PanicsOnMismatchedLengths(t *testing.T) {
	assert.Panics(t, func() {
		zoid.New([]int{0, 0}, []int{1}, []int{0, 0}, []int{0, 0})
	})
}

func TestZoid_New_PanicsOnTooManyDimensions(t *testing.T) {
	dims := make([]int, zoid.MaxDimensions+1)
	assert.Panics(t, func() {
		zoid.New(dims, dims, dims, dims)
	})
}

// TestSplitM_CoversAndDisjoint verifies invariant #2 (coverage) and the
// disjointness of Left/Right at every tau for a simple vertical 1-D zoid
// under a symmetric slope. With left == |right| the center strip is
// degenerate (zero-width at every tau): Left and Right meet exactly at
// the moving frontier with no gap, which is still a valid decomposition
// since the base-case iterator treats an empty zoid as a no-op.
func TestSplitM_CoversAndDisjoint(t *testing.T) {
	z := vertical([]int{20})
	dt := 4
	s := z.BaseWidth(0) / 2 // 10
	split := zoid.SplitM(z, 0, s, 1, -1)

	for tau := 0; tau <= dt; tau++ {
		loL, hiL := split.Left.BoundsAt(0, tau)
		loR, hiR := split.Right.BoundsAt(0, tau)
		loC, hiC := split.Center.BoundsAt(0, tau)

		assert.LessOrEqual(t, hiL, loR, "left/right overlap at tau=%d", tau)
		assert.Equal(t, loC, hiC, "center must be degenerate under symmetric slopes")
		assert.Equal(t, hiL, loR, "left and right must meet with no gap when center is empty")
	}

	// Union at tau=0 covers the original base exactly.
	loL, _ := split.Left.BoundsAt(0, 0)
	_, hiR := split.Right.BoundsAt(0, 0)
	assert.Equal(t, 0, loL)
	assert.Equal(t, 20, hiR)
}

// TestSplitM_AsymmetricSlopeGrowsCenter exercises a kernel whose |right|
// exceeds left, which gives the center strip genuine positive width that
// grows linearly with tau, the "rising trapezoid" shape a positive slope produces.
func TestSplitM_AsymmetricSlopeGrowsCenter(t *testing.T) {
	z := vertical([]int{20})
	s := 10
	split := zoid.SplitM(z, 0, s, 1, -2)

	for tau := 1; tau <= 3; tau++ {
		loC, hiC := split.Center.BoundsAt(0, tau)
		assert.Equal(t, tau, hiC-loC, "center width should grow at rate (|right|-left) per step")

		loL, hiL := split.Left.BoundsAt(0, tau)
		loR, hiR := split.Right.BoundsAt(0, tau)
		assert.Equal(t, hiL, loC)
		assert.Equal(t, hiC, loR)
		assert.LessOrEqual(t, loL, hiL)
		assert.LessOrEqual(t, loR, hiR)
	}
}

func TestSplitM_PanicsOutsidePrecondition(t *testing.T) {
	z := vertical([]int{20})
	assert.Panics(t, func() {
		zoid.SplitM(z, 0, 0, 1, -1) // s must satisfy a < s < b
	})
	assert.Panics(t, func() {
		zoid.SplitM(z, 0, 20, 1, -1)
	})
}

// TestSplitW_CoversAtTop checks that SplitW produces three
// zoids whose footprints at tau=dt (the top) reconstruct the original
// zoid's top footprint, mirroring the coverage check SplitM gets at the
// base.
func TestSplitW_CoversAtTop(t *testing.T) {
	dt := 4
	z := zoid.New([]int{0}, []int{20}, []int{-1}, []int{1}) // widens over time: base narrow, top wide
	split := zoid.SplitW(z, 0, dt, 1, -1)

	loL, _ := split.Left.BoundsAt(0, dt)
	_, hiR := split.Right.BoundsAt(0, dt)
	topLo, topHi := z.BoundsAt(0, dt)
	assert.Equal(t, topLo, loL)
	assert.Equal(t, topHi, hiR)

	for tau := 0; tau <= dt; tau++ {
		loL, hiL := split.Left.BoundsAt(0, tau)
		loR, hiR := split.Right.BoundsAt(0, tau)
		assert.LessOrEqual(t, hiL, loR, "left/right overlap at tau=%d", tau)
	}
}

func TestSplitT_AdvancesBoundsBySlope(t *testing.T) {
	z := zoid.New([]int{0}, []int{10}, []int{1}, []int{-1})
	first, second := zoid.SplitT(z, 3)

	require.Equal(t, z, first)
	assert.Equal(t, 3, second.A[0])
	assert.Equal(t, 7, second.B[0])
	assert.Equal(t, z.Da, second.Da)
	assert.Equal(t, z.Db, second.Db)
}

func TestSplitT_PanicsOnNonPositiveHalf(t *testing.T) {
	z := vertical([]int{10})
	assert.Panics(t, func() {
		zoid.SplitT(z, 0)
	})
}
