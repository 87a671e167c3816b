// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// coord.go — CreateCoord, the pillar lattice generator.
//
// Contract:
//   • Emits (nx+1)·(ny+1) pillars in j-major order, 6 values each.
//   • Pillar (i,j): top (i·dx, j·dy, 0) + Translation,
//     bottom (same x, y, Translation.Z + Offset + nz·dz).
//   • Irregular moves interior pillars (0<i<nx, 0<j<ny) by less than
//     PillarJitter·dx in x and PillarJitter·dy in y; top and bottom move
//     together so pillars stay vertical and never cross their neighbours.
//
// Complexity:
//   • Time O(nx·ny), Space O(nx·ny) for the output.
//
// Determinism:
//   • Jitter is drawn from rand.NewSource(opts.Seed) in pillar order.

package gridgen

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// CreateCoord builds the COORD array for dims and size.
func CreateCoord(dims cpgrid.Dims, size cpgrid.CellSize, opts GeometryOptions) ([]float64, error) {
	// 1) Validate everything before allocating.
	if err := validateGeometry(MethodCreateCoord, dims, size, opts); err != nil {
		return nil, err
	}

	// 2) Lattice lines: nx+1 x positions and ny+1 y positions, already translated.
	xs := floats.Span(make([]float64, dims.NX+1), 0, float64(dims.NX)*size.DX)
	ys := floats.Span(make([]float64, dims.NY+1), 0, float64(dims.NY)*size.DY)
	floats.AddConst(opts.Translation.X, xs)
	floats.AddConst(opts.Translation.Y, ys)

	top := opts.Translation.Z
	bottom := opts.Translation.Z + opts.Offset + float64(dims.NZ)*size.DZ

	var rng *rand.Rand
	if opts.Irregular {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	// 3) Emit pillars row by row (j outer), matching PillarIndex.
	coord := make([]float64, 0, dims.CoordLen())
	for j := 0; j <= dims.NY; j++ {
		for i := 0; i <= dims.NX; i++ {
			x, y := xs[i], ys[j]
			if rng != nil && i > 0 && i < dims.NX && j > 0 && j < dims.NY {
				x += jitter(rng, PillarJitter*size.DX)
				y += jitter(rng, PillarJitter*size.DY)
			}
			coord = append(coord, x, y, top, x, y, bottom)
		}
	}

	return coord, nil
}

// jitter draws uniformly from [-bound, bound).
func jitter(rng *rand.Rand, bound float64) float64 {
	return (2*rng.Float64() - 1) * bound
}
