package kernels

import "github.com/katalvlaran/zoidsweep/kernel"

// Life is Conway's Game of Life on a binary field where a cell holds
// 255 (alive) or 0 (dead), grounded in original_source's Life_k. Slope
// (1,-1): a cell's neighbourhood reaches one step in every direction,
// so the decomposition must shrink a zoid's footprint by one cell per
// axis per time step, same as Blur3.
type Life struct{}

func (Life) Dimensions() int      { return 2 }
func (Life) Neighbours() int      { return 1 }
func (Life) Slope(int) (int, int) { return 1, -1 }

func (Life) ApplyInterior(g kernel.Grid, coords []int, t int) {
	i, j := coords[0], coords[1]
	step(g, coords, t, i-1, i+1, j-1, j+1)
}

func (Life) ApplyBoundary(g kernel.Grid, coords []int, t int) {
	dims := g.Dims()
	i, j := coords[0], coords[1]
	step(g, coords, t, clamp(i-1, dims[0]), clamp(i+1, dims[0]), clamp(j-1, dims[1]), clamp(j+1, dims[1]))
}

func step(g kernel.Grid, coords []int, t, xLo, xHi, yLo, yHi int) {
	i, j := coords[0], coords[1]
	alive := 0
	for x := xLo; x <= xHi; x++ {
		for y := yLo; y <= yHi; y++ {
			if x == i && y == j {
				continue
			}
			if g.Elem([]int{x, y}, t) > 125 {
				alive++
			}
		}
	}

	var next float64
	if g.Elem(coords, t) > 125 {
		// Alive: survives on 2 or 3 live neighbours.
		if alive == 2 || alive == 3 {
			next = 255
		}
	} else if alive == 3 {
		// Dead: becomes alive with exactly 3 live neighbours.
		next = 255
	}
	g.SetElem(coords, t+1, next)
}
