package executor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zoidsweep/executor"
	"github.com/katalvlaran/zoidsweep/gridstore"
	"github.com/katalvlaran/zoidsweep/kernel"
	"github.com/katalvlaran/zoidsweep/kernels"
)

// slopeCheckingKernel wraps a kernel.Kernel so every Elem read its
// ApplyInterior/ApplyBoundary performs is checked against the kernel's
// own declared Neighbours() radius (infinity norm from the write
// coordinate). A read farther than that is a SlopeViolation (spec.md
// §7): an under-declared Slope/Neighbours lets the executor size cuts
// with too little spatial margin, letting a base case read a cell a
// sibling strip hasn't written yet.
type slopeCheckingKernel struct {
	kernel.Kernel
}

func (s slopeCheckingKernel) ApplyInterior(g kernel.Grid, coords []int, t int) {
	s.Kernel.ApplyInterior(slopeCheckingGrid{Grid: g, center: coords, r: s.Kernel.Neighbours()}, coords, t)
}

func (s slopeCheckingKernel) ApplyBoundary(g kernel.Grid, coords []int, t int) {
	s.Kernel.ApplyBoundary(slopeCheckingGrid{Grid: g, center: coords, r: s.Kernel.Neighbours()}, coords, t)
}

// slopeCheckingGrid wraps a kernel.Grid and panics on any Elem read
// farther (in infinity norm) than r from center.
type slopeCheckingGrid struct {
	kernel.Grid
	center []int
	r      int
}

func (g slopeCheckingGrid) Elem(coords []int, t int) float64 {
	for k := range coords {
		d := coords[k] - g.center[k]
		if d < 0 {
			d = -d
		}
		if d > g.r {
			panic(fmt.Sprintf("executor: SlopeViolation: read %v exceeds declared radius %d from write %v", coords, g.r, g.center))
		}
	}

	return g.Grid.Elem(coords, t)
}

// overreadingKernel is Blur3 with its declared Neighbours() understated
// relative to the 3x3 window its Apply functions actually read — a
// deliberately broken kernel, exercised only to prove
// slopeCheckingKernel catches the violation it is built to catch.
type overreadingKernel struct {
	kernels.Blur3
}

func (overreadingKernel) Neighbours() int { return 0 }

func TestSlopeCheckingKernel_CatchesViolation(t *testing.T) {
	data, err := gridstore.New[float64]([]int{6, 6}, make([]float64, 36), 2)
	require.NoError(t, err)

	wrapped := slopeCheckingKernel{Kernel: overreadingKernel{}}
	assert.Panics(t, func() {
		_ = executor.Run(data, wrapped, 1, executor.DefaultConfig())
	})
}

// TestSlopeCheckingKernel_PassesForCorrectlyDeclaredKernel exercises the
// decorator against Blur5, whose 5x5 reads stay within its declared
// Neighbours() radius of 2. The decorator checks reads against
// Neighbours() only; agreement between Slope() and Neighbours() is
// checked in kernels/kernels_test.go.
func TestSlopeCheckingKernel_PassesForCorrectlyDeclaredKernel(t *testing.T) {
	data, err := gridstore.New[float64]([]int{16, 16}, make([]float64, 256), 2)
	require.NoError(t, err)

	wrapped := slopeCheckingKernel{Kernel: kernels.Blur5{}}
	assert.NotPanics(t, func() {
		_ = executor.Run(data, wrapped, 3, executor.DefaultConfig())
	})
}
