// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// assemble.go — composing COORD/ZCORN (and ACTNUM) into a grid.
//
// The assembler does no geometry of its own. It checks array shapes and
// delegates construction to a Builder; cpgrid.FromArrays is the default.

package gridgen

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// Handle is what the assembler needs from a constructed grid.
// *cpgrid.Grid implements it.
type Handle interface {
	GetDims() (nx, ny, nz, active int)
	GetCellCorner(corner, i, j, k int) (r3.Vec, error)
}

// Builder constructs a grid from arrays laid out per the cpgrid convention.
type Builder func(dims cpgrid.Dims, zcorn, coord []float64, actnum []int) (Handle, error)

// CpgridBuilder adapts cpgrid.FromArrays to Builder.
func CpgridBuilder(dims cpgrid.Dims, zcorn, coord []float64, actnum []int) (Handle, error) {
	g, err := cpgrid.FromArrays(dims, zcorn, coord, actnum)
	if err != nil {
		// keep the interface nil on failure
		return nil, err
	}

	return g, nil
}

// Assemble validates the array lengths against dims and builds the grid with
// build (CpgridBuilder when nil). A nil actnum means every cell is active.
//
// Errors:
//   - ErrInvalidDimensions, ErrArrayLengthMismatch from the shape check.
//   - Whatever build returns, wrapped.
//   - ErrNilBuilder when build returns (nil, nil).
//
// Complexity: O(1) plus the cost of build.
func Assemble(dims cpgrid.Dims, coord, zcorn []float64, actnum []int, build Builder) (Handle, error) {
	if err := cpgrid.CheckArrays(dims, coord, zcorn, actnum); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodAssemble, err)
	}
	if build == nil {
		build = CpgridBuilder
	}

	h, err := build(dims, zcorn, coord, actnum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodAssemble, err)
	}
	if h == nil {
		return nil, fmt.Errorf("%s: %w", MethodAssemble, ErrNilBuilder)
	}

	return h, nil
}

// CreateGrid generates COORD and ZCORN for dims, size and opts and assembles
// them into an all-active *cpgrid.Grid.
func CreateGrid(dims cpgrid.Dims, size cpgrid.CellSize, opts GeometryOptions) (*cpgrid.Grid, error) {
	coord, err := CreateCoord(dims, size, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCreateGrid, err)
	}
	zcorn, err := CreateZcorn(dims, size, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCreateGrid, err)
	}

	g, err := cpgrid.FromArrays(dims, zcorn, coord, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCreateGrid, err)
	}

	return g, nil
}
