// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// options.go — geometry options for the generators and functional options
// for the extractor.
//
// Contract:
//   • GeometryOptions is a plain value; DefaultGeometryOptions gives the
//     deterministic baseline and Validate rejects non-finite numbers.
//   • ExtractOption values are applied in order into an unexported config;
//     there is no global state.

package gridgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// GeometryOptions selects how generated grids deviate from a plain box.
//
// Fields:
//   - Offset          base depth added to every corner and to pillar bottoms.
//   - Translation     shift applied to the whole pillar lattice.
//   - IrregularOffset odd (i+j) cell columns start FaultThrow·dz deeper,
//     giving a checkerboard of small faults; cell thickness stays dz.
//   - Concave         interior cells with odd i+j+k get top and bottom
//     swapped on their east side, producing non-convex cells.
//   - Irregular       bounded pseudo-random jitter of interior pillar x/y and
//     of every corner depth; top stays above bottom unless Concave swaps it.
//   - Seed            seed of the Irregular jitter.
//
// Concave is the only switch that breaks the top<bottom ordering; the others
// all preserve it, alone or combined.
type GeometryOptions struct {
	Offset          float64 `toml:"offset"`
	Translation     r3.Vec  `toml:"translation"`
	IrregularOffset bool    `toml:"irregular_offset"`
	Concave         bool    `toml:"concave"`
	Irregular       bool    `toml:"irregular"`
	Seed            int64   `toml:"seed"`
}

// DefaultGeometryOptions returns a box at depth 0 with no perturbations and
// Seed=DefaultSeed.
func DefaultGeometryOptions() GeometryOptions {
	return GeometryOptions{Seed: DefaultSeed}
}

// Validate returns ErrInvalidOptions if Offset or Translation is NaN or Inf.
// Complexity: O(1).
func (o GeometryOptions) Validate() error {
	for _, v := range [...]float64{o.Offset, o.Translation.X, o.Translation.Y, o.Translation.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("offset=%g translation=%v must be finite: %w", o.Offset, o.Translation, ErrInvalidOptions)
		}
	}

	return nil
}

// ExtractOption customizes one ExtractGrid call.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	// decompositionChange acknowledges an odd-parity window.
	decompositionChange bool
}

// WithDecompositionChange allows windows of odd parity. Even-parity windows
// are extracted with or without it.
func WithDecompositionChange() ExtractOption {
	return func(c *extractConfig) {
		c.decompositionChange = true
	}
}

// newExtractConfig applies opts in order; nil options are skipped.
func newExtractConfig(opts ...ExtractOption) extractConfig {
	var cfg extractConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
