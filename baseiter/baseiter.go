package baseiter

import "github.com/katalvlaran/zoidsweep/kernel"

// Run iterates the space-time volume of a zoid's current bounds across
// [t0, t1), advancing the kernel one time step at a time.
//
// Stage 1 (Prepare): snapshot the zoid's per-dimension bounds (lo, hi)
// and the kernel's radius.
// Stage 2 (Execute): for each t, iterate coords in row-major order over
// the current bounds, applying the kernel; then slide bounds by slope.
//
// a and b give the zoid's base bounds (already resolved to time t0 by
// the caller — the executor passes z.A and z.B, the bounds at tau=0);
// da, db are the zoid's per-dimension slopes.
func Run(g kernel.Grid, k kernel.Kernel, a, b, da, db []int, t0, t1 int) {
	d := k.Dimensions()
	dims := g.Dims()
	r := k.Neighbours()

	lo := append([]int(nil), a...)
	hi := append([]int(nil), b...)
	coords := make([]int, d)

	for t := t0; t < t1; t++ {
		if !empty(lo, hi) {
			interior := allInterior(lo, hi, dims, r)
			iterate(lo, hi, coords, d-1, func() {
				if interior {
					k.ApplyInterior(g, coords, t)
				} else {
					k.ApplyBoundary(g, coords, t)
				}
			})
		}
		for i := 0; i < d; i++ {
			lo[i] += da[i]
			hi[i] += db[i]
		}
	}
}

func empty(lo, hi []int) bool {
	for i := range lo {
		if lo[i] >= hi[i] {
			return true
		}
	}

	return false
}

func allInterior(lo, hi, dims []int, r int) bool {
	for k := range lo {
		if lo[k] < r || hi[k] > dims[k]-r {
			return false
		}
	}

	return true
}

// iterate walks ×_k [lo_k, hi_k) in row-major order (axis 0 fastest, per
// gridstore's offset formula), invoking visit once per coordinate tuple
// with coords populated. Call with axis = len(lo)-1.
func iterate(lo, hi, coords []int, axis int, visit func()) {
	if axis < 0 {
		visit()

		return
	}
	for c := lo[axis]; c < hi[axis]; c++ {
		coords[axis] = c
		iterate(lo, hi, coords, axis-1, visit)
	}
}
