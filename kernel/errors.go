// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the kernel/executor contract.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context with fmt.Errorf("...: %w", Err...).
//   - These classify the fatal contract breaches a Kernel can cause. They
//     are returned by executor.Config.Validate (ErrConfigOutOfBounds) and
//     executor.Run (both), before recursion starts; every other breach (out-of-range access, invalidated buffer, slope
//     violation) panics, since the executor offers no recovery path
//     mid-recursion.
package kernel

import "errors"

var (
	// ErrDimensionMismatch indicates a BufferSet's dimensionality does
	// not match a Kernel's declared Dimensions().
	ErrDimensionMismatch = errors.New("kernel: buffer and kernel dimensionality mismatch")

	// ErrConfigOutOfBounds indicates an executor Config field violates
	// its documented precondition (e.g. Cut < 3).
	ErrConfigOutOfBounds = errors.New("kernel: configuration value out of bounds")
)
