// Package kernel defines the contract a local update rule ("kernel")
// must satisfy to be driven by the recursive executor, plus the Grid
// accessor surface a kernel is given to read and write cells.
//
// What:
//   - Grid: the minimal read/write surface a kernel needs — element
//     access by coordinate and time step, and the grid's dimensions.
//     gridstore.BufferSet[float64] satisfies this interface.
//   - Kernel: dimensionality, neighbourhood radius, per-dimension
//     slopes, and the two evaluation functions (interior/boundary).
//
// Why a non-generic float64 Grid:
//   - gridstore.BufferSet is itself generic over its element type (a
//     reusable storage container), but every concrete kernel in this
//     module — and the recursive executor that drives them — only ever
//     needs float64 cells (image intensities, blur weights, life
//     population counts all fit). Keeping the Kernel/Grid contract
//     concrete avoids threading a type parameter through baseiter,
//     runtime and executor for no callers that would use it.
//
// Invariant: a kernel may only read Elem(coords', t) with
// max_k |coords'[k]-coords[k]| <= Neighbours(), and may only write
// Elem(coords, t+1). Violating this invalidates the whole decomposition.
//
// Errors:
//   - ErrDimensionMismatch: a Grid's Dims() length differs from a
//     Kernel's Dimensions().
//   - ErrConfigOutOfBounds: an executor Config field violates its
//     documented precondition.
package kernel
