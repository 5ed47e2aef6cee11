// Package runtime implements the ParallelRuntime contract: a pluggable
// spawn/sync abstraction the recursive executor drives its concurrency
// through.
//
// What:
//   - ParallelRuntime: Region establishes a scope in which Spawn is
//     legal; Spawn schedules a task for asynchronous execution; Sync
//     blocks until every task spawned since the enclosing Region (or the
//     previous Sync) has completed.
//   - Sequential: a degenerate runtime that runs every spawned task
//     inline on the caller. This keeps the single-threaded path
//     behavior-identical to the concurrent runtimes.
//   - Goroutine: one golang.org/x/sync/errgroup.Group per region.
//   - WorkStealing: a fixed worker pool with per-worker deques and
//     round-robin stealing, for the case where M-cuts produce many small
//     tasks and a shared work queue would contend.
//
// None of these implementations hold process-global state; each is an
// explicit handle, which executor.Run constructs from its Config for
// the duration of one run: no process-global scheduler state.
package runtime
