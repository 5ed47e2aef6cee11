// Package kernels implements the concrete example kernels grounded in
// original_source/code/include/kernels_2D.h: Copy (identity), Blur3 and
// Blur5 (normalized convolution), and Life (Conway's Game of Life on a
// binary 0/255 field).
//
// Blur3 and Blur5 fix two bugs present in the C source they were
// grounded on:
//   - The original's chained MIN/MAX(a, b, c) evaluates left-to-right
//     and silently degenerates to the last argument, producing
//     unclamped ±2 reads on Blur5 at the grid edge.
//   - The original shrinks its loop bounds at the edge instead of
//     clamping the read coordinate, which drops convolution taps near
//     the boundary — since the coefficients are normalized to sum to
//     1, dropping taps stops a uniform field from staying uniform at
//     the edge. These implementations always apply the full
//     coefficient matrix and clamp each read coordinate independently
//     to [0, extent-1] (edge replication), so mass is conserved at the
//     boundary too.
package kernels
