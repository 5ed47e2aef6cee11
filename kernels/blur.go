package kernels

import "github.com/katalvlaran/zoidsweep/kernel"

// blur3Coeff is the normalized 3x3 convolution kernel from
// original_source/code/include/kernels_2D.h's Blur3_k, reproduced
// verbatim (coefficients sum to 1).
var blur3Coeff = [3][3]float64{
	{0.01, 0.08, 0.01},
	{0.08, 0.64, 0.08},
	{0.01, 0.08, 0.01},
}

// blur5Coeff is the normalized 5x5 convolution kernel from Blur5_k.
var blur5Coeff = [5][5]float64{
	{0.01, 0.02, 0.04, 0.02, 0.01},
	{0.02, 0.04, 0.08, 0.04, 0.02},
	{0.04, 0.08, 0.16, 0.08, 0.04},
	{0.02, 0.04, 0.08, 0.04, 0.02},
	{0.01, 0.02, 0.04, 0.02, 0.01},
}

// Blur3 is a 2-D normalized 3x3 convolution kernel, slope (1,-1) on
// each axis (radius-1 neighbourhood).
type Blur3 struct{}

func (Blur3) Dimensions() int      { return 2 }
func (Blur3) Neighbours() int      { return 1 }
func (Blur3) Slope(int) (int, int) { return 1, -1 }

func (Blur3) ApplyInterior(g kernel.Grid, coords []int, t int) {
	i, j := coords[0], coords[1]
	sum := 0.0
	for x := i - 1; x <= i+1; x++ {
		for y := j - 1; y <= j+1; y++ {
			sum += g.Elem([]int{x, y}, t) * blur3Coeff[x-i+1][y-j+1]
		}
	}
	g.SetElem(coords, t+1, sum)
}

// ApplyBoundary clamps each read coordinate independently to the
// nearest in-bounds cell (edge replication), but still applies the
// full 3x3 coefficient matrix — since the coefficients always sum to
// 1, a uniform field stays uniform at the boundary too.
func (Blur3) ApplyBoundary(g kernel.Grid, coords []int, t int) {
	dims := g.Dims()
	i, j := coords[0], coords[1]
	sum := 0.0
	for x := i - 1; x <= i+1; x++ {
		for y := j - 1; y <= j+1; y++ {
			sum += g.Elem([]int{clamp(x, dims[0]), clamp(y, dims[1])}, t) * blur3Coeff[x-i+1][y-j+1]
		}
	}
	g.SetElem(coords, t+1, sum)
}

// Blur5 is a 2-D normalized 5x5 convolution kernel, slope (2,-2) on
// each axis (radius-2 neighbourhood).
type Blur5 struct{}

func (Blur5) Dimensions() int      { return 2 }
func (Blur5) Neighbours() int      { return 2 }
func (Blur5) Slope(int) (int, int) { return 2, -2 }

func (Blur5) ApplyInterior(g kernel.Grid, coords []int, t int) {
	i, j := coords[0], coords[1]
	sum := 0.0
	for x := i - 2; x <= i+2; x++ {
		for y := j - 2; y <= j+2; y++ {
			sum += g.Elem([]int{x, y}, t) * blur5Coeff[x-i+2][y-j+2]
		}
	}
	g.SetElem(coords, t+1, sum)
}

// ApplyBoundary clamps each read coordinate independently (edge
// replication) rather than dropping out-of-range taps, for the same
// mass-conservation reason as Blur3.ApplyBoundary.
func (Blur5) ApplyBoundary(g kernel.Grid, coords []int, t int) {
	dims := g.Dims()
	i, j := coords[0], coords[1]
	sum := 0.0
	for x := i - 2; x <= i+2; x++ {
		for y := j - 2; y <= j+2; y++ {
			sum += g.Elem([]int{clamp(x, dims[0]), clamp(y, dims[1])}, t) * blur5Coeff[x-i+2][y-j+2]
		}
	}
	g.SetElem(coords, t+1, sum)
}

// clamp bounds a neighbour coordinate v to [0, extent-1] (edge
// replication for boundary reads).
func clamp(v, extent int) int {
	if v < 0 {
		return 0
	}
	if v > extent-1 {
		return extent - 1
	}

	return v
}
