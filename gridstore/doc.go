// Package gridstore implements BufferSet: the owning, multi-copy,
// row-major grid storage the recursive executor reads and writes.
//
// What:
//   - BufferSet[E] holds C >= 2 copies of a d-dimensional grid of E,
//     contiguous per copy, row-major within a copy.
//   - Elem/SetElem map a time step t to copy t mod C.
//   - GlobalRegion returns the zero-slope zoid.Zoid covering the whole
//     grid, the seed Run starts recursion from.
//
// Ownership:
//   - BufferSet is move-only by convention: always hold it through a
//     pointer, and when transferring ownership (e.g. into a driver that
//     will run for the buffer's whole lifetime) call TakeOwnership,
//     which invalidates the source. Go has no compile-time copy
//     disabling for structs, so this is enforced at runtime: every
//     access on an invalidated BufferSet panics.
//
// Complexity: O(1) for Elem/SetElem/Dims/Size; O(d) for GlobalRegion;
// O(n) for New's copy-in, where n = product(dims).
//
// Errors:
//   - ErrInvalidDimensions, ErrTooFewCopies, ErrDataLengthMismatch are
//     returned by New (construction-time validation).
//   - Out-of-range coordinates and use-after-TakeOwnership panic; see
//     errors.go for why these are not recoverable errors.
package gridstore
