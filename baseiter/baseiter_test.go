package baseiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/zoidsweep/baseiter"
	"github.com/katalvlaran/zoidsweep/kernel"
)

// recordingGrid notes every write's coordinate and time step; it never
// actually stores values, since the test only checks write locations.
type recordingGrid struct {
	dims   []int
	writes []write
}

type write struct {
	coords []int
	t      int
}

func (g *recordingGrid) Elem(coords []int, t int) float64 { return 0 }
func (g *recordingGrid) SetElem(coords []int, t int, v float64) {
	g.writes = append(g.writes, write{coords: append([]int(nil), coords...), t: t})
}
func (g *recordingGrid) Dims() []int { return g.dims }

type slopeKernel struct {
	dims  int
	r     int
	l, rr int
}

func (k slopeKernel) Dimensions() int      { return k.dims }
func (k slopeKernel) Neighbours() int      { return k.r }
func (k slopeKernel) Slope(int) (int, int) { return k.l, k.rr }

func (k slopeKernel) ApplyInterior(g kernel.Grid, coords []int, t int) {
	g.SetElem(coords, t+1, 0)
}

func (k slopeKernel) ApplyBoundary(g kernel.Grid, coords []int, t int) {
	g.SetElem(coords, t+1, 0)
}

// invariant #3 (write-locality): every write to (coords, t+1) happens
// while the iterator's footprint for step t — i.e. the bounds before
// that step's slide by slope — contains coords.
func TestRun_WriteLocality(t *testing.T) {
	g := &recordingGrid{dims: []int{30}}
	k := slopeKernel{dims: 1, r: 1, l: 1, rr: -1}

	a, b := []int{5}, []int{25}
	da, db := []int{1}, []int{-1}

	baseiter.Run(g, k, a, b, da, db, 0, 6)

	lo, hi := append([]int(nil), a...), append([]int(nil), b...)
	for step := 0; step < 6; step++ {
		wantT := step + 1
		for _, w := range g.writes {
			if w.t != wantT {
				continue
			}
			assert.GreaterOrEqualf(t, w.coords[0], lo[0], "write at t=%d outside step lower bound", wantT)
			assert.Lessf(t, w.coords[0], hi[0], "write at t=%d outside step upper bound", wantT)
		}
		lo[0] += da[0]
		hi[0] += db[0]
	}
	assert.NotEmpty(t, g.writes)
}

func TestRun_EmptyZoidIsNoOp(t *testing.T) {
	g := &recordingGrid{dims: []int{10}}
	k := slopeKernel{dims: 1, r: 1, l: 1, rr: -1}

	baseiter.Run(g, k, []int{5}, []int{5}, []int{0}, []int{0}, 0, 3)
	assert.Empty(t, g.writes)
}
