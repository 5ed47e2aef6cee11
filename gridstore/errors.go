// SPDX-License-Identifier: MIT
// Package gridstore: sentinel error set.
//
// Only ErrInvalidDimensions, ErrTooFewCopies, and ErrDataLengthMismatch
// are returned as errors — they are construction-time validation,
// checked once before a run begins. Every other contract breach
// (out-of-range coordinate, access after TakeOwnership invalidates the
// source) is a fatal bug and panics instead, since the
// executor has no recovery path once recursion is underway.
package gridstore

import "errors"

var (
	// ErrInvalidDimensions indicates a bad dims vector: empty, a
	// non-positive extent, or more axes than zoid.MaxDimensions.
	ErrInvalidDimensions = errors.New("gridstore: invalid grid dimensions")

	// ErrTooFewCopies indicates Copies < 2, violating the double
	// (or higher-order) buffering a moving time window needs.
	ErrTooFewCopies = errors.New("gridstore: buffer set requires at least 2 copies")

	// ErrDataLengthMismatch indicates the seed data slice's length does
	// not equal the product of dims.
	ErrDataLengthMismatch = errors.New("gridstore: data length does not match grid size")
)
