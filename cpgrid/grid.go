// SPDX-License-Identifier: MIT
// Package: libecl/cpgrid
//
// grid.go — immutable grid built from COORD/ZCORN/ACTNUM.
//
// Contract:
//   • FromArrays validates dims and exact array lengths before copying anything.
//   • Inputs are deep-copied; later mutation by the caller is not observed.
//   • Accessors never mutate; a *Grid is safe for concurrent use.

package cpgrid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const methodFromArrays = "FromArrays"

// Grid is a corner-point grid resolved from its arrays.
type Grid struct {
	dims   Dims
	coord  []float64
	zcorn  []float64
	actnum []int
	active int
}

// CheckArrays verifies that coord, zcorn and (when non-nil) actnum have exactly
// the lengths implied by dims. It returns ErrInvalidDimensions for bad dims and
// ErrArrayLengthMismatch for the first array of the wrong length.
// Complexity: O(1).
func CheckArrays(dims Dims, coord, zcorn []float64, actnum []int) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	if len(coord) != dims.CoordLen() {
		return fmt.Errorf("len(coord)=%d, want %d for %v: %w",
			len(coord), dims.CoordLen(), dims, ErrArrayLengthMismatch)
	}
	if len(zcorn) != dims.ZcornLen() {
		return fmt.Errorf("len(zcorn)=%d, want %d for %v: %w",
			len(zcorn), dims.ZcornLen(), dims, ErrArrayLengthMismatch)
	}
	if actnum != nil && len(actnum) != dims.NumCells() {
		return fmt.Errorf("len(actnum)=%d, want %d for %v: %w",
			len(actnum), dims.NumCells(), dims, ErrArrayLengthMismatch)
	}

	return nil
}

// FromArrays builds a Grid. A nil actnum marks every cell active; otherwise a
// cell is active when its flag is non-zero.
// Complexity: O(len(coord)+len(zcorn)+len(actnum)) time and memory.
func FromArrays(dims Dims, zcorn, coord []float64, actnum []int) (*Grid, error) {
	if err := CheckArrays(dims, coord, zcorn, actnum); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromArrays, err)
	}

	g := &Grid{
		dims:  dims,
		coord: append([]float64(nil), coord...),
		zcorn: append([]float64(nil), zcorn...),
	}
	if actnum == nil {
		g.active = dims.NumCells()
	} else {
		g.actnum = append([]int(nil), actnum...)
		for _, a := range actnum {
			if a != 0 {
				g.active++
			}
		}
	}

	return g, nil
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() Dims { return g.dims }

// GetDims returns the cell counts and the number of active cells.
func (g *Grid) GetDims() (nx, ny, nz, active int) {
	return g.dims.NX, g.dims.NY, g.dims.NZ, g.active
}

// Active reports whether cell (i,j,k) is active. Out-of-range cells are not.
func (g *Grid) Active(i, j, k int) bool {
	if !g.dims.InBounds(i, j, k) {
		return false
	}
	if g.actnum == nil {
		return true
	}

	return g.actnum[g.dims.CellIndex(i, j, k)] != 0
}

// Pillar returns the pillar at lattice position (i,j), 0≤i≤nx, 0≤j≤ny.
func (g *Grid) Pillar(i, j int) (Pillar, error) {
	if i < 0 || i > g.dims.NX || j < 0 || j > g.dims.NY {
		return Pillar{}, fmt.Errorf("Pillar(%d,%d) outside %d×%d lattice: %w",
			i, j, g.dims.NX+1, g.dims.NY+1, ErrCellIndex)
	}

	return g.pillar(i, j), nil
}

func (g *Grid) pillar(i, j int) Pillar {
	p := g.coord[g.dims.CoordOffset(i, j):]

	return Pillar{
		Top:    r3.Vec{X: p[0], Y: p[1], Z: p[2]},
		Bottom: r3.Vec{X: p[3], Y: p[4], Z: p[5]},
	}
}

// GetCellCorner returns corner `corner` of cell (i,j,k): its depth comes from
// ZCORN and its x/y from the owning pillar at that depth.
// Complexity: O(1).
func (g *Grid) GetCellCorner(corner, i, j, k int) (r3.Vec, error) {
	if corner < 0 || corner >= CornersPerCell {
		return r3.Vec{}, fmt.Errorf("GetCellCorner: corner=%d: %w", corner, ErrCornerIndex)
	}
	if !g.dims.InBounds(i, j, k) {
		return r3.Vec{}, fmt.Errorf("GetCellCorner: cell (%d,%d,%d) outside %v: %w",
			i, j, k, g.dims, ErrCellIndex)
	}

	return g.corner(corner, i, j, k), nil
}

func (g *Grid) corner(c, i, j, k int) r3.Vec {
	ci, cj, _ := CornerAxes(c)
	z := g.zcorn[g.dims.ZcornOffset(i, j, k)+c]

	return g.pillar(i+ci, j+cj).At(z)
}

// CellCorners returns all eight corners of cell (i,j,k) in sub-index order.
func (g *Grid) CellCorners(i, j, k int) ([CornersPerCell]r3.Vec, error) {
	var out [CornersPerCell]r3.Vec
	if !g.dims.InBounds(i, j, k) {
		return out, fmt.Errorf("CellCorners: cell (%d,%d,%d) outside %v: %w",
			i, j, k, g.dims, ErrCellIndex)
	}
	for c := range out {
		out[c] = g.corner(c, i, j, k)
	}

	return out, nil
}

// Coord returns a copy of the COORD array.
func (g *Grid) Coord() []float64 { return append([]float64(nil), g.coord...) }

// Zcorn returns a copy of the ZCORN array.
func (g *Grid) Zcorn() []float64 { return append([]float64(nil), g.zcorn...) }

// Actnum returns a copy of the ACTNUM mask, or nil when every cell is active.
func (g *Grid) Actnum() []int {
	if g.actnum == nil {
		return nil
	}

	return append([]int(nil), g.actnum...)
}
