// SPDX-License-Identifier: MIT

// Package gridgen synthesizes corner-point COORD/ZCORN arrays and carves
// index-space sub-grids out of existing ones.
//
// The package offers the following key components:
//
//   - Generators:
//     – CreateCoord: the pillar lattice, (nx+1)·(ny+1) vertical pillars.
//     – CreateZcorn: eight corner depths per cell, with optional perturbations
//     (IrregularOffset, Irregular, Concave) selected through GeometryOptions.
//   - Assembler:
//     – Assemble: shape-checks arrays and hands them to a grid Builder.
//     – CreateGrid: generate + assemble into a *cpgrid.Grid.
//   - Extractor:
//     – AxisBound (Fixed | Range), IndexWindow, DecompositionParity.
//     – ExtractGrid, ExtractCoord, ExtractZcorn.
//   - Recipes: TOML descriptions of a generated grid (DecodeRecipe, LoadRecipe).
//
// Decomposition:
//
// The perturbation patterns alternate with the parity of i+j(+k), so the phase
// of a cell depends on where it sits in its source grid. A window whose lower
// corner (li,lj,lk) has odd li+lj+lk puts a cell of the opposite phase at local
// (0,0,0). ExtractGrid refuses such windows unless the caller passes
// WithDecompositionChange. The flag never changes the copied values; it only
// acknowledges that the result will not line up with a freshly generated grid of
// the same sub-dimensions.
//
// Guarantees:
//
//   - Every function is pure: inputs are never mutated and outputs are freshly
//     allocated, so any number of calls may share the same source arrays.
//   - Validation happens before allocation; on error no partial array is
//     returned.
//   - Errors are sentinels (ErrBounds, ErrDecomposition, ErrInvalidOptions and
//     the cpgrid kinds re-exported here) wrapped with call context.
//   - Generation is deterministic for equal dims, cell size and options
//     (including Seed).
package gridgen
