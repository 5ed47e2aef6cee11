// Package zoid implements the space–time trapezoid ("zoid") that the
// recursive stencil executor cuts and recurses over.
//
// A Zoid in d spatial dimensions is the tuple (a, b, da, db), each a
// length-d integer vector. Paired with a time interval [t0,t1), the zoid
// covers the half-open interval [a[k]+da[k]*tau, b[k]+db[k]*tau) along
// dimension k at local time offset tau = t-t0.
//
// Zoid is immutable value data: every cut (SplitM, SplitW, SplitT)
// returns brand-new Zoid values and never mutates its receiver. All
// intervals are half-open and consistently so ([a,b), never [a,b]),
// resolving the inconsistency flagged against the original source.
//
// What:
//   - Zoid stores base/top bounds implicitly via per-dimension slopes.
//   - SplitM/SplitW cut along one spatial dimension into three pieces.
//   - SplitT halves the time interval, shifting spatial bounds to match.
//
// Invariants:
//   - a[k]+da[k]*(t1-t0) <= b[k]+db[k]*(t1-t0) for every k (no self-inversion).
//   - Dim() never exceeds MaxDimensions.
//
// Errors:
//   - Precondition violations in SplitM/SplitW/SplitT are contract
//     breaches, not recoverable errors; they panic with a diagnostic,
//     per the "invariant assertions, not runtime errors" policy used
//     throughout this module.
package zoid
