// SPDX-License-Identifier: MIT
// Package: libecl/cpgrid
//
// types.go — dimensions, cell extents and pillars.

package cpgrid

import (
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/spatial/r3"
)

// Values stored per pillar and per cell in COORD and ZCORN.
const (
	CoordPerPillar = 6
	CornersPerCell = 8
)

// Dims holds the number of cells along the i, j and k axes.
type Dims struct {
	NX int `toml:"nx"`
	NY int `toml:"ny"`
	NZ int `toml:"nz"`
}

// Validate returns ErrInvalidDimensions unless all three counts are positive
// and both array lengths, CoordLen and ZcornLen, fit in an int.
// Complexity: O(1).
func (d Dims) Validate() error {
	if d.NX < 1 || d.NY < 1 || d.NZ < 1 {
		return fmt.Errorf("dims (%d,%d,%d) must all be ≥ 1: %w", d.NX, d.NY, d.NZ, ErrInvalidDimensions)
	}
	if !productFits(d.NX, d.NY, d.NZ, CornersPerCell) || !productFits(d.NX+1, d.NY+1, CoordPerPillar) {
		return fmt.Errorf("dims (%d,%d,%d) overflow the array length: %w", d.NX, d.NY, d.NZ, ErrInvalidDimensions)
	}

	return nil
}

// productFits reports whether the product of positive factors is ≤ math.MaxInt.
// A factor that wrapped negative never fits.
func productFits(factors ...int) bool {
	p := uint64(1)
	for _, f := range factors {
		if f < 1 {
			return false
		}
		hi, lo := bits.Mul64(p, uint64(f))
		if hi != 0 || lo > math.MaxInt {
			return false
		}
		p = lo
	}

	return true
}

// Axis returns the cell count along axis 0 (i), 1 (j) or 2 (k).
// Any other axis yields 0.
func (d Dims) Axis(axis int) int {
	switch axis {
	case 0:
		return d.NX
	case 1:
		return d.NY
	case 2:
		return d.NZ
	default:
		return 0
	}
}

// NumCells is nx·ny·nz.
func (d Dims) NumCells() int { return d.NX * d.NY * d.NZ }

// NumPillars is (nx+1)·(ny+1).
func (d Dims) NumPillars() int { return (d.NX + 1) * (d.NY + 1) }

// CoordLen is the exact COORD length for d.
func (d Dims) CoordLen() int { return CoordPerPillar * d.NumPillars() }

// ZcornLen is the exact ZCORN length for d.
func (d Dims) ZcornLen() int { return CornersPerCell * d.NumCells() }

// String renders d as "nx×ny×nz".
func (d Dims) String() string {
	return fmt.Sprintf("%d×%d×%d", d.NX, d.NY, d.NZ)
}

// CellSize holds the cell extents along x, y and depth.
type CellSize struct {
	DX float64 `toml:"dx"`
	DY float64 `toml:"dy"`
	DZ float64 `toml:"dz"`
}

// UnitCell is the 1×1×1 cell size.
var UnitCell = CellSize{DX: 1, DY: 1, DZ: 1}

// Validate returns ErrInvalidDimensions unless every extent is finite and > 0.
// Complexity: O(1).
func (s CellSize) Validate() error {
	for _, v := range [...]float64{s.DX, s.DY, s.DZ} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("cell size (%g,%g,%g) must be finite and > 0: %w",
				s.DX, s.DY, s.DZ, ErrInvalidDimensions)
		}
	}

	return nil
}

// Pillar is the line segment through a lattice intersection.
type Pillar struct {
	Top    r3.Vec
	Bottom r3.Vec
}

// At returns the point on the pillar line at depth z.
// Degenerate (flat) pillars yield the top x/y.
func (p Pillar) At(z float64) r3.Vec {
	dz := p.Bottom.Z - p.Top.Z
	if dz == 0 {
		return r3.Vec{X: p.Top.X, Y: p.Top.Y, Z: z}
	}
	t := (z - p.Top.Z) / dz
	dir := r3.Sub(p.Bottom, p.Top)

	return r3.Vec{
		X: p.Top.X + t*dir.X,
		Y: p.Top.Y + t*dir.Y,
		Z: z,
	}
}
