// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// extract.go — sub-grid extraction.
//
// Contract:
//   • Checks run in a fixed order: dims → array lengths → bounds → parity.
//     The bounds check does not depend on WithDecompositionChange.
//   • Pillars (i,j), i∈[li,ui+1], j∈[lj,uj+1], are copied verbatim.
//   • Corner octets of cells in the window are copied verbatim and re-keyed to
//     local (i-li, j-lj, k-lk). WithDecompositionChange never alters values.
//   • Output is allocated only after every check passed.
//
// Complexity:
//   • Time O(|window pillars| + |window cells|), Space the same.
//   • Rows are copied as contiguous runs: one copy per (j) for COORD and one
//     per (j,k) for ZCORN.

package gridgen

import (
	"fmt"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// ExtractGrid returns the COORD and ZCORN arrays of the sub-grid selected by
// window. The sub-grid dimensions are window.SubDims().
//
// Errors:
//   - ErrInvalidDimensions, ErrArrayLengthMismatch: inputs do not fit dims.
//   - ErrBounds: window outside dims on some axis.
//   - ErrDecomposition: odd window parity without WithDecompositionChange.
func ExtractGrid(dims cpgrid.Dims, coord, zcorn []float64, window IndexWindow, opts ...ExtractOption) (subCoord, subZcorn []float64, err error) {
	cfg := newExtractConfig(opts...)

	if err := cpgrid.CheckArrays(dims, coord, zcorn, nil); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodExtractGrid, err)
	}
	if err := window.Validate(dims); err != nil {
		return nil, nil, fmt.Errorf("%s: window %v: %w", MethodExtractGrid, window, err)
	}
	if window.Parity() == OddParity && !cfg.decompositionChange {
		return nil, nil, fmt.Errorf("%s: window %v has %v parity (lower bounds %v): %w",
			MethodExtractGrid, window, window.Parity(), window.Lower(), ErrDecomposition)
	}

	return sliceCoord(dims, coord, window), sliceZcorn(dims, zcorn, window), nil
}

// ExtractCoord returns the pillars of window. Pillar geometry does not depend
// on decomposition, so there is no parity gate.
func ExtractCoord(dims cpgrid.Dims, coord []float64, window IndexWindow) ([]float64, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodExtractCoord, err)
	}
	if len(coord) != dims.CoordLen() {
		return nil, fmt.Errorf("%s: len(coord)=%d, want %d: %w",
			MethodExtractCoord, len(coord), dims.CoordLen(), ErrArrayLengthMismatch)
	}
	if err := window.Validate(dims); err != nil {
		return nil, fmt.Errorf("%s: window %v: %w", MethodExtractCoord, window, err)
	}

	return sliceCoord(dims, coord, window), nil
}

// ExtractZcorn returns the corner octets of the cells in window, without the
// parity gate of ExtractGrid.
func ExtractZcorn(dims cpgrid.Dims, zcorn []float64, window IndexWindow) ([]float64, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodExtractZcorn, err)
	}
	if len(zcorn) != dims.ZcornLen() {
		return nil, fmt.Errorf("%s: len(zcorn)=%d, want %d: %w",
			MethodExtractZcorn, len(zcorn), dims.ZcornLen(), ErrArrayLengthMismatch)
	}
	if err := window.Validate(dims); err != nil {
		return nil, fmt.Errorf("%s: window %v: %w", MethodExtractZcorn, window, err)
	}

	return sliceZcorn(dims, zcorn, window), nil
}

// sliceCoord assumes a validated window.
func sliceCoord(dims cpgrid.Dims, coord []float64, w IndexWindow) []float64 {
	li, ui := w.I.Bounds()
	lj, uj := w.J.Bounds()

	out := make([]float64, 0, cpgrid.CoordPerPillar*(ui-li+2)*(uj-lj+2))
	for j := lj; j <= uj+1; j++ {
		// pillars li..ui+1 of row j are contiguous
		from := dims.CoordOffset(li, j)
		to := dims.CoordOffset(ui+1, j) + cpgrid.CoordPerPillar
		out = append(out, coord[from:to]...)
	}

	return out
}

// sliceZcorn assumes a validated window.
func sliceZcorn(dims cpgrid.Dims, zcorn []float64, w IndexWindow) []float64 {
	li, ui := w.I.Bounds()
	lj, uj := w.J.Bounds()
	lk, uk := w.K.Bounds()

	out := make([]float64, 0, w.SubDims().ZcornLen())
	for k := lk; k <= uk; k++ {
		for j := lj; j <= uj; j++ {
			from := dims.ZcornOffset(li, j, k)
			to := dims.ZcornOffset(ui, j, k) + cpgrid.CornersPerCell
			out = append(out, zcorn[from:to]...)
		}
	}

	return out
}
