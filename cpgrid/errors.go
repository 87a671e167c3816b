// SPDX-License-Identifier: MIT
// Package: libecl/cpgrid
//
// errors.go — sentinel errors for the cpgrid package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites attach context with "%w" ("FromArrays: len(zcorn)=...: %w").
//   • Nothing in this package panics on caller input.

package cpgrid

import "errors"

// ErrInvalidDimensions indicates a non-positive cell count or a non-positive,
// NaN or infinite cell extent.
var ErrInvalidDimensions = errors.New("cpgrid: invalid dimensions")

// ErrArrayLengthMismatch indicates that a COORD, ZCORN or ACTNUM array does not
// have exactly the length implied by the grid dimensions.
var ErrArrayLengthMismatch = errors.New("cpgrid: array length does not match dimensions")

// ErrCellIndex indicates an (i,j,k) or linear cell index outside the grid.
var ErrCellIndex = errors.New("cpgrid: cell index out of range")

// ErrCornerIndex indicates a corner sub-index outside [0,8).
var ErrCornerIndex = errors.New("cpgrid: corner index out of range")
