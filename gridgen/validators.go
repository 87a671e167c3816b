// SPDX-License-Identifier: MIT

// Package gridgen validation helpers shared by the generators.
package gridgen

import (
	"fmt"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// validateGeometry checks dims, cell size and options, in that order, and
// prefixes the first failure with method.
// Complexity: O(1).
func validateGeometry(method string, dims cpgrid.Dims, size cpgrid.CellSize, opts GeometryOptions) error {
	if err := dims.Validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := size.Validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
