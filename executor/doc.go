// Package executor drives the recursive cache-oblivious stencil
// algorithm: Run seeds the initial zoid from the grid's global region
// and calls recurse, which at each level
// chooses between a parallel space cut (M), a serial space cut (W), a
// time cut, or the base case, rotating the cut dimension each level.
//
// Decision order and rationale:
//   - Base case once the time extent drops to Config.Cut or the
//     recursion has gone Config.FunCutoff levels deep (the latter is a
//     stack/dispatch-overhead guard, not a correctness requirement).
//   - Otherwise prefer a space cut over a time cut: it keeps all of a
//     sub-zoid's time steps in cache together for a smaller spatial
//     footprint.
//   - Prefer M over W: M's two outward strips are independent and run
//     concurrently; W's pieces have a more constrained dependency order.
//   - Fall back to a time cut, splitting [t0,t1) at its midpoint.
//
// Fallibility: Run returns an error only for an invalid Config (via
// Config.Validate) or a grid/kernel dimensionality mismatch, both
// checked before recursion starts; gridstore.New is the other fallible
// constructor. Everything else — contract breaches surfaced by a
// malformed Kernel mid-recursion — panics instead.
package executor
