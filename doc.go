// Package zoidsweep is the root of a cache-oblivious recursive stencil
// executor: given a grid, a local update rule ("kernel"), and a number
// of time steps, it evaluates the rule over the grid using the
// Frigo–Strumpen trapezoidal space-time decomposition instead of
// stepping through time one full grid sweep at a time.
//
// This package holds no code of its own — it exists so the module has
// a documented entry point. The implementation is split across:
//
//	zoid/          — the Zoid value type and its three cut operations
//	kernel/        — the Kernel/Grid contract a stencil rule implements
//	gridstore/     — the multi-buffered grid storage kernels read and write
//	baseiter/      — the direct space-time loop recursion bottoms out to
//	runtime/       — the pluggable spawn/sync concurrency abstraction
//	executor/      — the recursive decomposition driving all of the above
//	kernels/       — a handful of concrete example kernels
//	reference/     — a naive iterative oracle for correctness checks
//	stopwatch/     — a timing helper used by the demo CLI
//	cmd/zoidsweep/ — the demo CLI
//
// Start at executor.Run.
package zoidsweep
