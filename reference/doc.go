// Package reference implements the naive iterative oracle: for each
// time step, for every grid point in row-major order, apply the kernel
// (choosing interior or boundary evaluation per point) in lockstep
// across the whole grid. It is never used by the recursive executor —
// only by tests and benchmarks that check the executor's output
// against it.
package reference
