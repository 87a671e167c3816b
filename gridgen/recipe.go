// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// recipe.go — TOML descriptions of generated grids.
//
// Example:
//
//	dims      = { nx = 5, ny = 5, nz = 5 }
//	cell_size = { dx = 1, dy = 1, dz = 1 }
//
//	[options]
//	offset           = 0.5
//	translation      = { x = 10, y = 10, z = 0 }
//	irregular_offset = true
//	concave          = true
//	irregular        = true
//
// Omitted keys keep their defaults: UnitCell and DefaultGeometryOptions.
// Unknown keys are rejected.

package gridgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// Recipe is everything needed to regenerate a grid.
type Recipe struct {
	Dims     cpgrid.Dims     `toml:"dims"`
	CellSize cpgrid.CellSize `toml:"cell_size"`
	Options  GeometryOptions `toml:"options"`
}

// DecodeRecipe reads a TOML recipe from r and validates it.
func DecodeRecipe(r io.Reader) (Recipe, error) {
	rec := Recipe{CellSize: cpgrid.UnitCell, Options: DefaultGeometryOptions()}

	md, err := toml.NewDecoder(r).Decode(&rec)
	if err != nil {
		return Recipe{}, fmt.Errorf("%s: %w", MethodDecodeRecipe, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Recipe{}, fmt.Errorf("%s: unknown keys %s: %w",
			MethodDecodeRecipe, strings.Join(keys, ", "), ErrInvalidOptions)
	}
	if err := validateGeometry(MethodDecodeRecipe, rec.Dims, rec.CellSize, rec.Options); err != nil {
		return Recipe{}, err
	}

	return rec, nil
}

// LoadRecipe decodes the recipe stored at path.
func LoadRecipe(path string) (Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("%s: %w", MethodDecodeRecipe, err)
	}
	defer f.Close()

	return DecodeRecipe(f)
}

// Build generates the recipe's COORD and ZCORN arrays.
func (r Recipe) Build() (coord, zcorn []float64, err error) {
	if coord, err = CreateCoord(r.Dims, r.CellSize, r.Options); err != nil {
		return nil, nil, err
	}
	if zcorn, err = CreateZcorn(r.Dims, r.CellSize, r.Options); err != nil {
		return nil, nil, err
	}

	return coord, zcorn, nil
}

// Grid generates and assembles the recipe's grid.
func (r Recipe) Grid() (*cpgrid.Grid, error) {
	return CreateGrid(r.Dims, r.CellSize, r.Options)
}
