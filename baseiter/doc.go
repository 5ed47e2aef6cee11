// Package baseiter implements the base-case iterator the recursive
// executor bottoms out to once a zoid's time extent drops to CUT or
// below: direct iteration over every space-time cell, sliding the
// zoid's spatial bounds by its slopes after each time step.
//
// What:
//   - Run walks t in [t0, t1), and for each t walks coords in row-major
//     order over the zoid's current per-dimension bounds, dispatching
//     to ApplyInterior or ApplyBoundary depending on whether every
//     neighbour read at the kernel's radius stays in the grid.
//   - An empty spatial extent on any axis (lo >= hi) is a legal no-op
//     for that time step, not an error.
//
// Complexity: O(Δt · Π(hi_k−lo_k)) — linear in the zoid's space-time
// volume, no further recursion.
package baseiter
