// SPDX-License-Identifier: MIT

// Package gridgen shared constants: method tags for error context and the
// perturbation bounds used by the generators.
package gridgen

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors.
//-----------------------------------------------------------------------------

const (
	MethodCreateCoord  = "CreateCoord"
	MethodCreateZcorn  = "CreateZcorn"
	MethodCreateGrid   = "CreateGrid"
	MethodAssemble     = "Assemble"
	MethodExtractGrid  = "ExtractGrid"
	MethodExtractCoord = "ExtractCoord"
	MethodExtractZcorn = "ExtractZcorn"
	MethodDecodeRecipe = "DecodeRecipe"
)

//-----------------------------------------------------------------------------
// Perturbation bounds
//-----------------------------------------------------------------------------

// PillarJitter is the largest lateral pillar displacement under Irregular,
// as a fraction of the cell width. Below 1/2, neighbouring pillars never cross.
const PillarJitter = 0.25

// DepthJitter is the largest corner depth displacement under Irregular, as a
// fraction of dz. Below 1/2, every top corner stays above its bottom corner.
const DepthJitter = 0.25

// FaultThrow is the extra starting depth of odd (i+j) cell columns under
// IrregularOffset, as a fraction of dz.
const FaultThrow = 0.5

// DefaultSeed seeds the Irregular perturbations in DefaultGeometryOptions.
const DefaultSeed int64 = 1
