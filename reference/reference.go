package reference

import "github.com/katalvlaran/zoidsweep/kernel"

// Run applies k to g for tSteps time steps, iterating every grid point
// in row-major order at each step and choosing ApplyInterior or
// ApplyBoundary per point depending on whether its neighbourhood at
// radius k.Neighbours() stays within g.Dims(). It has no notion of
// zoids or cuts — this is the O(n*tSteps) baseline the decomposition is
// measured against.
func Run(g kernel.Grid, k kernel.Kernel, tSteps int) {
	dims := g.Dims()
	d := k.Dimensions()
	r := k.Neighbours()
	coords := make([]int, d)

	for t := 0; t < tSteps; t++ {
		iterate(dims, coords, d-1, func() {
			if interior(coords, dims, r) {
				k.ApplyInterior(g, coords, t)
			} else {
				k.ApplyBoundary(g, coords, t)
			}
		})
	}
}

func interior(coords, dims []int, r int) bool {
	for i, c := range coords {
		if c < r || c >= dims[i]-r {
			return false
		}
	}

	return true
}

// iterate walks the full grid [0,dims[0]) x ... x [0,dims[d-1]) in
// row-major order (axis 0 fastest), mirroring baseiter's convention.
func iterate(dims, coords []int, axis int, visit func()) {
	if axis < 0 {
		visit()

		return
	}
	for c := 0; c < dims[axis]; c++ {
		coords[axis] = c
		iterate(dims, coords, axis-1, visit)
	}
}
