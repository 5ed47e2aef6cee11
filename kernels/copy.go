package kernels

import "github.com/katalvlaran/zoidsweep/kernel"

// Copy is the identity kernel: it writes through the cell it reads,
// unchanged, every time step. It has no neighbours and slope (0,0), so
// the recursive executor never needs a space cut to keep it correct —
// every zoid stays a rectangular prism through time.
type Copy struct {
	dims int
}

// NewCopy returns a Copy kernel for d spatial dimensions.
func NewCopy(d int) Copy { return Copy{dims: d} }

func (c Copy) Dimensions() int          { return c.dims }
func (c Copy) Neighbours() int          { return 0 }
func (c Copy) Slope(int) (int, int)     { return 0, 0 }
func (c Copy) ApplyInterior(g kernel.Grid, coords []int, t int) { c.apply(g, coords, t) }
func (c Copy) ApplyBoundary(g kernel.Grid, coords []int, t int) { c.apply(g, coords, t) }

func (c Copy) apply(g kernel.Grid, coords []int, t int) {
	g.SetElem(coords, t+1, g.Elem(coords, t))
}
