package gridstore

import (
	"fmt"

	"github.com/katalvlaran/zoidsweep/zoid"
)

// BufferSet is an owning, row-major, multi-copy grid of d dimensions.
// Zero value is not usable; construct with New.
type BufferSet[E any] struct {
	dims    []int // per-dimension extents, length d
	n       int   // product(dims); elements per copy
	copies  int   // C >= 2
	storage []E   // length n*copies; copy c occupies storage[n*c : n*c+n]
	valid   bool  // false once TakeOwnership or Invalidate has run
}

// New constructs a BufferSet from dims and seed data of length
// product(dims). Only copy 0 is initialized from data; the remaining
// copies hold E's zero value until written.
//
// Stage 1 (Validate): dims non-empty, within zoid.MaxDimensions, all
// extents positive; copies >= 2; len(data) == product(dims).
// Stage 2 (Prepare): allocate n*copies storage.
// Stage 3 (Finalize): copy seed data into copy 0.
//
// Complexity: O(n) time and space, n = product(dims).
func New[E any](dims []int, data []E, copies int) (*BufferSet[E], error) {
	// Stage 1: Validate
	if len(dims) == 0 || len(dims) > zoid.MaxDimensions {
		return nil, fmt.Errorf("New: dims length %d: %w", len(dims), ErrInvalidDimensions)
	}
	n := 1
	for _, extent := range dims {
		if extent <= 0 {
			return nil, fmt.Errorf("New: non-positive extent %d: %w", extent, ErrInvalidDimensions)
		}
		n *= extent
	}
	if copies < 2 {
		return nil, fmt.Errorf("New: copies=%d: %w", copies, ErrTooFewCopies)
	}
	if len(data) != n {
		return nil, fmt.Errorf("New: len(data)=%d want %d: %w", len(data), n, ErrDataLengthMismatch)
	}

	// Stage 2: Prepare
	storage := make([]E, n*copies)

	// Stage 3: Finalize — copy 0 seeded, the rest zero-valued.
	copy(storage[:n], data)

	return &BufferSet[E]{
		dims:    append([]int(nil), dims...),
		n:       n,
		copies:  copies,
		storage: storage,
		valid:   true,
	}, nil
}

func (b *BufferSet[E]) checkValid() {
	if b == nil || !b.valid {
		panic("gridstore: accessing invalidated buffer")
	}
}

// Dims returns a copy of the per-dimension extents.
func (b *BufferSet[E]) Dims() []int {
	b.checkValid()
	return append([]int(nil), b.dims...)
}

// Dim reports the spatial dimensionality d.
func (b *BufferSet[E]) Dim() int {
	b.checkValid()
	return len(b.dims)
}

// Size returns n, the number of elements in a single copy.
func (b *BufferSet[E]) Size() int {
	b.checkValid()
	return b.n
}

// Copies returns C, the number of buffer copies.
func (b *BufferSet[E]) Copies() int {
	b.checkValid()
	return b.copies
}

// Width returns dims[0]. Panics if d < 1.
func (b *BufferSet[E]) Width() int { return b.axis(0) }

// Height returns dims[1]. Panics if d < 2.
func (b *BufferSet[E]) Height() int { return b.axis(1) }

// Depth returns dims[2]. Panics if d < 3.
func (b *BufferSet[E]) Depth() int { return b.axis(2) }

func (b *BufferSet[E]) axis(i int) int {
	b.checkValid()
	if i >= len(b.dims) {
		panic(fmt.Sprintf("gridstore: axis %d requested, grid has %d dimensions", i, len(b.dims)))
	}

	return b.dims[i]
}

// offset computes the row-major linear offset of coords within one copy:
// offset(i0,...,i_{d-1}) = i0 + i1*dims[0] + i2*dims[0]*dims[1] + ...
func (b *BufferSet[E]) offset(coords []int) int {
	if len(coords) != len(b.dims) {
		panic(fmt.Sprintf("gridstore: coords length %d, want %d", len(coords), len(b.dims)))
	}

	offset := 0
	stride := 1
	for k, c := range coords {
		if c < 0 || c >= b.dims[k] {
			panic(fmt.Sprintf("gridstore: coordinate %d out of range [0,%d) on axis %d", c, b.dims[k], k))
		}
		offset += c * stride
		stride *= b.dims[k]
	}

	return offset
}

// Elem reads the cell at coords and time step t (copy t mod C).
func (b *BufferSet[E]) Elem(coords []int, t int) E {
	b.checkValid()
	idx := b.n*mod(t, b.copies) + b.offset(coords)

	return b.storage[idx]
}

// SetElem writes the cell at coords and time step t (copy t mod C).
func (b *BufferSet[E]) SetElem(coords []int, t int, v E) {
	b.checkValid()
	idx := b.n*mod(t, b.copies) + b.offset(coords)
	b.storage[idx] = v
}

// mod is a non-negative modulo; t is always >= 0 in this module but this
// guards against accidental negative time steps during development.
func mod(t, c int) int {
	m := t % c
	if m < 0 {
		m += c
	}

	return m
}

// Pointer returns the raw backing slice for one copy, for interop (e.g.
// copying pixel data out for encoding). The returned slice aliases
// BufferSet's storage; callers must not retain it past the BufferSet's
// lifetime.
func (b *BufferSet[E]) Pointer(copyIdx int) []E {
	b.checkValid()
	if copyIdx < 0 || copyIdx >= b.copies {
		panic(fmt.Sprintf("gridstore: copy index %d out of range [0,%d)", copyIdx, b.copies))
	}

	return b.storage[b.n*copyIdx : b.n*copyIdx+b.n]
}

// GlobalRegion returns the zero-slope zoid.Zoid covering the whole grid:
// a=0, b=dims, da=db=0 — the "perfect vertical sides" pyramid base Run
// starts recursion from.
func (b *BufferSet[E]) GlobalRegion() zoid.Zoid {
	b.checkValid()
	d := len(b.dims)
	a := make([]int, d)
	da := make([]int, d)
	db := make([]int, d)

	return zoid.New(a, b.dims, da, db)
}

// TakeOwnership returns a new BufferSet that owns this one's storage and
// invalidates the receiver, modeling move-only semantics: copy is
// disabled to prevent silent aliasing of the backing storage.
func (b *BufferSet[E]) TakeOwnership() *BufferSet[E] {
	b.checkValid()
	moved := &BufferSet[E]{
		dims:    b.dims,
		n:       b.n,
		copies:  b.copies,
		storage: b.storage,
		valid:   true,
	}
	b.Invalidate()

	return moved
}

// Invalidate marks the BufferSet unusable; any further access panics.
// Called automatically by TakeOwnership on the source it moves from.
func (b *BufferSet[E]) Invalidate() {
	b.n = 0
	b.storage = nil
	b.valid = false
}

// Equal reports whether a and b have identical dimensions, copy counts,
// and element-wise storage across all copies. A separate function
// rather than a method because Go cannot add the `comparable` bound a
// generic method would need beyond BufferSet[E]'s own declared E any.
func Equal[E comparable](a, b *BufferSet[E]) bool {
	a.checkValid()
	b.checkValid()
	if a.n != b.n || a.copies != b.copies || len(a.dims) != len(b.dims) {
		return false
	}
	for k := range a.dims {
		if a.dims[k] != b.dims[k] {
			return false
		}
	}
	for i := range a.storage {
		if a.storage[i] != b.storage[i] {
			return false
		}
	}

	return true
}
