// Package executor drives the recursive cache-oblivious decomposition:
// recurse() decides between space cut M, space cut W, and time cut, and
// Run() is the public entry point that seeds the initial zoid and starts
// the recursion on the caller; parallel regions are opened by the cuts.
package executor

import (
	"fmt"
	stdruntime "runtime"

	"github.com/katalvlaran/zoidsweep/gridstore"
	"github.com/katalvlaran/zoidsweep/kernel"
	"github.com/katalvlaran/zoidsweep/runtime"
	"github.com/katalvlaran/zoidsweep/zoid"

	"github.com/katalvlaran/zoidsweep/baseiter"
)

// Run evaluates kernel k over data for tSteps discrete time steps using
// the trapezoidal decomposition. On return, the final
// grid state resides in copy tSteps mod data.Copies().
//
// Run validates cfg and the data/kernel dimensionality match before
// starting; both are fallible, checked-once preconditions. Everything
// else this call might hit (out-of-range access, a slope violation) is
// a fatal contract breach and panics instead of returning an error,
// there is no recovery path once recursion begins.
func Run(data *gridstore.BufferSet[float64], k kernel.Kernel, tSteps int, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if data.Dim() != k.Dimensions() {
		return fmt.Errorf("executor: grid has %d dimensions, kernel has %d: %w",
			data.Dim(), k.Dimensions(), kernel.ErrDimensionMismatch)
	}
	if tSteps <= 0 {
		return nil
	}

	z := data.GlobalRegion()
	rt := cfg.buildRuntime()

	// recurse opens its own nested regions wherever an M or W cut needs
	// to spawn; the top-level call itself runs directly on the caller.
	recurse(data, k, rt, z, 0, tSteps, 0, cfg.Cut, cfg.FunCutoff, 0)

	if ws, ok := rt.(*runtime.WorkStealing); ok {
		ws.Close()
	}

	return nil
}

func (c Config) buildRuntime() runtime.ParallelRuntime {
	switch c.Mode {
	case ModeSequential:
		return runtime.NewSequential()
	case ModeWorkStealing:
		n := c.WorkStealingWorkers
		if n <= 0 {
			n = stdruntime.GOMAXPROCS(0)
		}

		return runtime.NewWorkStealing(n)
	default:
		return runtime.NewGoroutine()
	}
}

// recurse implements the cut decision tree: base case,
// space cut M, space cut W, or time cut, rotating the cut dimension
// each level and forcing a base case past funCutoff recursive calls.
func recurse(g kernel.Grid, k kernel.Kernel, rt runtime.ParallelRuntime, z zoid.Zoid, t0, t1, dim, cut, funCutoff, depth int) {
	dt := t1 - t0
	if dt <= cut || depth >= funCutoff {
		baseiter.Run(g, k, z.A, z.B, z.Da, z.Db, t0, t1)

		return
	}

	left, right := k.Slope(dim)
	widthBase := z.BaseWidth(dim)
	widthTop := z.TopWidth(dim, dt)
	threshold := 2 * (abs(left) + abs(right)) * dt
	nextDim := (dim + 1) % k.Dimensions()

	// Besides meeting the slope-driven threshold, a cut needs a legal
	// interior integer position strictly between a zoid's low and high
	// bound on the cut axis, which requires a width of at least 2. A
	// zero-slope kernel (e.g. Copy) makes threshold 0, which the width
	// inequality alone would satisfy down to width 1; the extra >= 2
	// guard is what actually keeps the recursion well-founded in that
	// degenerate case.
	switch {
	case widthBase >= threshold && widthBase >= 2:
		s := z.A[dim] + widthBase/2
		cutz := zoid.SplitM(z, dim, s, left, right)
		rt.Region(func(r runtime.Region) {
			r.Spawn(func() { recurse(g, k, rt, cutz.Left, t0, t1, nextDim, cut, funCutoff, depth+1) })
			recurse(g, k, rt, cutz.Right, t0, t1, nextDim, cut, funCutoff, depth+1)
			r.Sync()
		})
		recurse(g, k, rt, cutz.Center, t0, t1, nextDim, cut, funCutoff, depth+1)

	case widthTop >= threshold && widthTop >= 2:
		cutz := zoid.SplitW(z, dim, dt, left, right)
		recurse(g, k, rt, cutz.Left, t0, t1, nextDim, cut, funCutoff, depth+1)
		rt.Region(func(r runtime.Region) {
			r.Spawn(func() { recurse(g, k, rt, cutz.Center, t0, t1, nextDim, cut, funCutoff, depth+1) })
			recurse(g, k, rt, cutz.Right, t0, t1, nextDim, cut, funCutoff, depth+1)
			r.Sync()
		})

	default:
		h := dt / 2
		first, second := zoid.SplitT(z, h)
		recurse(g, k, rt, first, t0, t0+h, dim, cut, funCutoff, depth+1)
		recurse(g, k, rt, second, t0+h, t1, dim, cut, funCutoff, depth+1)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
