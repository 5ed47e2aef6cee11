// Package stopwatch implements a thin timing-hook interface the CLI
// uses to report per-phase elapsed time.
//
// Stopwatch records a Start time and named Lap durations relative to
// it. Grounded in junjiewwang-perf-analysis's Timer
// (pkg/utils/timer.go) — hierarchical phases collapse to a flat lap
// list here since the CLI only needs "time to build grid" / "time to
// run" / "total", not nested phases.
//
// Instrumentation failures never abort a run: callers that log lap
// times swallow any logging error themselves; Stopwatch itself cannot
// fail.
package stopwatch
