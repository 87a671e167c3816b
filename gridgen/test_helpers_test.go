package gridgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
	"github.com/AlexanderSemenyak/libecl/gridgen"
)

// fixture is one source grid used across extraction tests.
type fixture struct {
	name  string
	dims  cpgrid.Dims
	coord []float64
	zcorn []float64
	grid  *cpgrid.Grid
}

// fixtures returns a plain 4×4×4 box and a 5×5×5 grid with every
// perturbation and a lateral translation.
func fixtures(t testing.TB) []fixture {
	t.Helper()

	perturbed := gridgen.DefaultGeometryOptions()
	perturbed.Offset = 0.5
	perturbed.IrregularOffset = true
	perturbed.Concave = true
	perturbed.Irregular = true
	perturbed.Translation.X, perturbed.Translation.Y = 10, 10

	specs := []struct {
		name string
		dims cpgrid.Dims
		opts gridgen.GeometryOptions
	}{
		{"Box4", cpgrid.Dims{NX: 4, NY: 4, NZ: 4}, gridgen.DefaultGeometryOptions()},
		{"Perturbed5", cpgrid.Dims{NX: 5, NY: 5, NZ: 5}, perturbed},
	}

	out := make([]fixture, 0, len(specs))
	for _, s := range specs {
		coord, err := gridgen.CreateCoord(s.dims, cpgrid.UnitCell, s.opts)
		require.NoError(t, err)
		zcorn, err := gridgen.CreateZcorn(s.dims, cpgrid.UnitCell, s.opts)
		require.NoError(t, err)
		g, err := gridgen.CreateGrid(s.dims, cpgrid.UnitCell, s.opts)
		require.NoError(t, err)
		out = append(out, fixture{name: s.name, dims: s.dims, coord: coord, zcorn: zcorn, grid: g})
	}

	return out
}

// axisRanges lists every valid Range on an axis of length n.
func axisRanges(n int) []gridgen.AxisBound {
	var out []gridgen.AxisBound
	for l := 0; l < n; l++ {
		for u := l; u < n; u++ {
			out = append(out, gridgen.Range(l, u))
		}
	}

	return out
}

// allWindows lists every valid IndexWindow of dims.
func allWindows(dims cpgrid.Dims) []gridgen.IndexWindow {
	var out []gridgen.IndexWindow
	for _, bi := range axisRanges(dims.NX) {
		for _, bj := range axisRanges(dims.NY) {
			for _, bk := range axisRanges(dims.NZ) {
				out = append(out, gridgen.Window(bi, bj, bk))
			}
		}
	}

	return out
}

// assertTopAboveBottom fails t for any cell corner pair with top ≥ bottom.
func assertTopAboveBottom(t *testing.T, dims cpgrid.Dims, zcorn []float64) {
	t.Helper()
	for g := 0; g < dims.NumCells(); g++ {
		i, j, k := dims.CellIJK(g)
		off := dims.ZcornOffset(i, j, k)
		for cj := 0; cj < 2; cj++ {
			for ci := 0; ci < 2; ci++ {
				top := zcorn[off+cpgrid.CornerIndex(ci, cj, 0)]
				bottom := zcorn[off+cpgrid.CornerIndex(ci, cj, 1)]
				if top >= bottom {
					t.Errorf("cell (%d,%d,%d) corner (%d,%d): top %g ≥ bottom %g", i, j, k, ci, cj, top, bottom)
				}
			}
		}
	}
}

// clone copies a float slice.
func clone(s []float64) []float64 {
	return append([]float64(nil), s...)
}
