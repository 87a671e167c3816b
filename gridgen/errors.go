// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// errors.go — sentinel errors for the gridgen package.
//
// Error policy:
//   • Callers branch with errors.Is; messages are not part of the contract.
//   • Context is attached with "%s: ...: %w" where %s is the method name.
//   • All errors are caller programming errors; nothing is retried.

package gridgen

import (
	"errors"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// ErrInvalidDimensions is cpgrid.ErrInvalidDimensions, returned by the
// generators for non-positive counts or extents.
var ErrInvalidDimensions = cpgrid.ErrInvalidDimensions

// ErrArrayLengthMismatch is cpgrid.ErrArrayLengthMismatch, returned by the
// assembler and the extractor when an array does not fit its dimensions.
var ErrArrayLengthMismatch = cpgrid.ErrArrayLengthMismatch

// ErrBounds indicates an index window with lower<0, upper≥dimension or
// lower>upper on some axis. It is reported regardless of
// WithDecompositionChange.
var ErrBounds = errors.New("gridgen: index window out of bounds")

// ErrDecomposition indicates an odd-parity window extracted without
// WithDecompositionChange.
var ErrDecomposition = errors.New("gridgen: window changes decomposition")

// ErrInvalidOptions indicates a non-finite GeometryOptions value or an
// unknown key in a recipe.
var ErrInvalidOptions = errors.New("gridgen: invalid geometry options")

// ErrNilBuilder is returned when a Builder yields neither a grid nor an error.
var ErrNilBuilder = errors.New("gridgen: builder returned no grid")
