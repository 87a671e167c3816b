// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// zcorn.go — CreateZcorn, the corner depth generator.
//
// Depth of corner c=(ci,cj,ck) of cell (i,j,k), built in stages:
//   1. base       (k+ck)·dz
//   2. IrregularOffset: + FaultThrow·dz when i+j is odd
//   3. Irregular:  + jitter in [-DepthJitter·dz, DepthJitter·dz)
//   4. Concave:    interior cells with odd i+j+k swap top/bottom on ci=1;
//                  whole depths move, so a fault throw stays on both corners
//   5. + Offset on every value
//
// Without Concave each top corner is at least (1-2·DepthJitter)·dz above the
// corner below it. Without any perturbation, cells sharing a face share their
// corner depths exactly.
//
// Complexity: Time O(nx·ny·nz), Space O(nx·ny·nz) for the output.

package gridgen

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// CreateZcorn builds the ZCORN array for dims and size.
func CreateZcorn(dims cpgrid.Dims, size cpgrid.CellSize, opts GeometryOptions) ([]float64, error) {
	if err := validateGeometry(MethodCreateZcorn, dims, size, opts); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if opts.Irregular {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	zcorn := make([]float64, dims.ZcornLen())
	for k := 0; k < dims.NZ; k++ {
		for j := 0; j < dims.NY; j++ {
			for i := 0; i < dims.NX; i++ {
				cell := zcorn[dims.ZcornOffset(i, j, k):][:cpgrid.CornersPerCell]

				var throw float64
				if opts.IrregularOffset && (i+j)%2 == 1 {
					throw = FaultThrow * size.DZ
				}
				for c := range cell {
					_, _, ck := cpgrid.CornerAxes(c)
					cell[c] = float64(k+ck)*size.DZ + throw
				}

				if rng != nil {
					for c := range cell {
						cell[c] += jitter(rng, DepthJitter*size.DZ)
					}
				}

				if opts.Concave && concaveCell(dims, i, j, k) {
					for cj := 0; cj < 2; cj++ {
						t, b := cpgrid.CornerIndex(1, cj, 0), cpgrid.CornerIndex(1, cj, 1)
						cell[t], cell[b] = cell[b], cell[t]
					}
				}
			}
		}
	}
	floats.AddConst(opts.Offset, zcorn)

	return zcorn, nil
}

// concaveCell reports whether Concave inverts cell (i,j,k): strictly interior
// cells on the odd i+j+k phase.
func concaveCell(dims cpgrid.Dims, i, j, k int) bool {
	interior := i > 0 && i < dims.NX-1 &&
		j > 0 && j < dims.NY-1 &&
		k > 0 && k < dims.NZ-1

	return interior && (i+j+k)%2 == 1
}
