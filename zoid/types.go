package zoid

import "fmt"

// MaxDimensions is DIM_MAX: the largest spatial dimensionality a Zoid
// (and so a gridstore.BufferSet) may have; New panics above it.
const MaxDimensions = 4

// Zoid is a d-dimensional space–time trapezoid, held as four length-d
// integer vectors: base bounds A, B and per-dimension slopes Da, Db.
// Zero value is not meaningful; construct with New.
type Zoid struct {
	A, B   []int // base (tau=0) bounds: covers [A[k], B[k]) per dimension k
	Da, Db []int // per-dimension slope of the left (A) and right (B) edge
}

// New builds a Zoid from the four per-dimension vectors. All four slices
// must share the same length (the spatial dimensionality) and that
// length must not exceed MaxDimensions. New defensively copies its
// inputs so the returned Zoid is safe to treat as immutable even if the
// caller mutates the slices it passed in.
//
// Complexity: O(d).
func New(a, b, da, db []int) Zoid {
	d := len(a)
	if len(b) != d || len(da) != d || len(db) != d {
		panic(fmt.Sprintf("zoid: mismatched vector lengths: a=%d b=%d da=%d db=%d", len(a), len(b), len(da), len(db)))
	}
	if d > MaxDimensions {
		panic(fmt.Sprintf("zoid: dimensionality %d exceeds MaxDimensions %d", d, MaxDimensions))
	}

	return Zoid{A: cloneInts(a), B: cloneInts(b), Da: cloneInts(da), Db: cloneInts(db)}
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// Dim reports the spatial dimensionality d.
func (z Zoid) Dim() int {
	return len(z.A)
}

// Clone returns a deep copy; Zoid is value data but its fields are
// slices, so a literal `z2 := z` still aliases the backing arrays.
func (z Zoid) Clone() Zoid {
	return Zoid{A: cloneInts(z.A), B: cloneInts(z.B), Da: cloneInts(z.Da), Db: cloneInts(z.Db)}
}

// BaseWidth returns b[dim]-a[dim], the width of the zoid's base (tau=0)
// along dimension dim.
func (z Zoid) BaseWidth(dim int) int {
	return z.B[dim] - z.A[dim]
}

// TopWidth returns the width of the zoid's top (tau=dt) along dimension
// dim: (b[dim]+db[dim]*dt) - (a[dim]+da[dim]*dt).
func (z Zoid) TopWidth(dim int, dt int) int {
	top := z.B[dim] + z.Db[dim]*dt
	bot := z.A[dim] + z.Da[dim]*dt
	return top - bot
}

// BoundsAt returns the half-open interval [lo, hi) the zoid covers along
// dimension dim at local time offset tau.
func (z Zoid) BoundsAt(dim int, tau int) (lo, hi int) {
	return z.A[dim] + z.Da[dim]*tau, z.B[dim] + z.Db[dim]*tau
}

// Empty reports whether the zoid's base footprint is empty in any
// dimension (lo >= hi). An empty zoid is a legal no-op for the base-case
// iterator, never an error.
func (z Zoid) Empty() bool {
	for k := range z.A {
		if z.A[k] >= z.B[k] {
			return true
		}
	}
	return false
}

func (z Zoid) String() string {
	return fmt.Sprintf("Zoid{A:%v B:%v Da:%v Db:%v}", z.A, z.B, z.Da, z.Db)
}
