package grdecl_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
	"github.com/AlexanderSemenyak/libecl/grdecl"
	"github.com/AlexanderSemenyak/libecl/gridgen"
)

// perturbedDeck generates a translated 4×3×2 grid with every perturbation.
func perturbedDeck(t *testing.T) *grdecl.Deck {
	t.Helper()
	dims := cpgrid.Dims{NX: 4, NY: 3, NZ: 2}
	size := cpgrid.CellSize{DX: 25, DY: 12.5, DZ: 0.3}
	opts := gridgen.DefaultGeometryOptions()
	opts.Offset = 1234.5
	opts.Translation.X, opts.Translation.Y = 1e6, -3.25
	opts.Irregular, opts.IrregularOffset, opts.Concave = true, true, true

	coord, err := gridgen.CreateCoord(dims, size, opts)
	require.NoError(t, err)
	zcorn, err := gridgen.CreateZcorn(dims, size, opts)
	require.NoError(t, err)
	actnum := make([]int, dims.NumCells())
	for i := range actnum {
		if i%5 != 0 {
			actnum[i] = 1
		}
	}

	return &grdecl.Deck{Dims: dims, Coord: coord, Zcorn: zcorn, Actnum: actnum}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	deck := perturbedDeck(t)

	var buf bytes.Buffer
	require.NoError(t, grdecl.Encode(&buf, deck))

	got, err := grdecl.Decode(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(deck, got); diff != "" {
		t.Errorf("deck mismatch (-encoded +decoded):\n%s", diff)
	}
}

func TestEncode_RepeatCounts(t *testing.T) {
	dims := cpgrid.Dims{NX: 1, NY: 1, NZ: 1}
	coord, err := gridgen.CreateCoord(dims, cpgrid.UnitCell, gridgen.DefaultGeometryOptions())
	require.NoError(t, err)
	zcorn, err := gridgen.CreateZcorn(dims, cpgrid.UnitCell, gridgen.DefaultGeometryOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, grdecl.Encode(&buf, &grdecl.Deck{Dims: dims, Coord: coord, Zcorn: zcorn}))

	out := buf.String()
	assert.Contains(t, out, "SPECGRID\n  1 1 1 1 F /")
	assert.Contains(t, out, "ZCORN\n  4*0 4*1\n/")
	assert.NotContains(t, out, grdecl.KeywordActnum)
}

// TestEncode_SignedZeroRuns keeps -0 out of runs of 0 so the sign survives.
func TestEncode_SignedZeroRuns(t *testing.T) {
	dims := cpgrid.Dims{NX: 1, NY: 1, NZ: 1}
	coord, err := gridgen.CreateCoord(dims, cpgrid.UnitCell, gridgen.DefaultGeometryOptions())
	require.NoError(t, err)
	negZero := math.Copysign(0, -1)
	zcorn := []float64{0, 0, negZero, 0, 1, 1, 1, 1}

	var buf bytes.Buffer
	require.NoError(t, grdecl.Encode(&buf, &grdecl.Deck{Dims: dims, Coord: coord, Zcorn: zcorn}))
	assert.Contains(t, buf.String(), "ZCORN\n  2*0 -0 0 4*1\n/")

	got, err := grdecl.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, math.Signbit(got.Zcorn[2]), "ZCORN[2] lost its sign")
	assert.False(t, math.Signbit(got.Zcorn[3]))
}

func TestDecode_HandWritten(t *testing.T) {
	doc := `-- a 2×1×1 grid
SPECGRID
  2 1 1 1 F /
MAPUNITS -- skipped
  METRES /
COORD
  0 0 0 0 0 1   1 0 0 1 0 1   2 0 0 2 0 1
  0 1 0 0 1 1   1 1 0 1 1 1   2 1 0 2 1 1
/
ZCORN
  4*0 4*1 4*0.5 3*1.5 1.5/
ACTNUM
  1 0/
`
	deck, err := grdecl.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, cpgrid.Dims{NX: 2, NY: 1, NZ: 1}, deck.Dims)
	assert.Equal(t, []int{1, 0}, deck.Actnum)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 1, 1, 1, 0.5, 0.5, 0.5, 0.5, 1.5, 1.5, 1.5, 1.5}, deck.Zcorn)

	g, err := cpgrid.FromArrays(deck.Dims, deck.Zcorn, deck.Coord, deck.Actnum)
	require.NoError(t, err)
	p, err := g.GetCellCorner(7, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 1, 1.5}, [3]float64{p.X, p.Y, p.Z})
}

func TestDecode_Errors(t *testing.T) {
	const spec = "SPECGRID\n 1 1 1 1 F /\n"
	const coord = "COORD\n 0 0 0 0 0 1 1 0 0 1 0 1 0 1 0 0 1 1 1 1 0 1 1 1 /\n"

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"MissingZcorn", spec + coord, grdecl.ErrMissingKeyword},
		{"MissingSpecgrid", coord + "ZCORN\n 8*0 /\n", grdecl.ErrMissingKeyword},
		{"ShortZcorn", spec + coord + "ZCORN\n 7*0 /\n", cpgrid.ErrArrayLengthMismatch},
		{"BadFloat", spec + coord + "ZCORN\n 7*0 x /\n", grdecl.ErrMalformed},
		{"BadRepeat", spec + coord + "ZCORN\n 8* /\n", grdecl.ErrMalformed},
		{"Unterminated", spec + coord + "ZCORN\n 8*0\n", grdecl.ErrMalformed},
		{"ShortSpecgrid", "SPECGRID\n 1 1 /\n", grdecl.ErrMalformed},
		{"ZeroDims", "SPECGRID\n 0 1 1 /\n" + coord + "ZCORN\n /\n", cpgrid.ErrInvalidDimensions},
		{"OverflowingDims", "SPECGRID\n 1 1 2305843009213693952 1 F /\n" + "COORD\n 24*0 /\nZCORN\n /\n", cpgrid.ErrInvalidDimensions},
		{"HugeRepeat", spec + coord + "ZCORN\n 2000000000*0 /\n", grdecl.ErrMalformed},
		{"HugeRepeatBeforeSpecgrid", "ZCORN\n 2000000000*0 /\n" + spec + coord, grdecl.ErrMalformed},
		{"LongZcorn", spec + coord + "ZCORN\n 8*0 0 /\n", grdecl.ErrMalformed},
		{"LongUnknownKeyword", spec + coord + "PORO\n 25*0.2 /\nZCORN\n 8*0 /\n", grdecl.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grdecl.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode_RejectsBadDeck(t *testing.T) {
	deck := perturbedDeck(t)
	deck.Zcorn = deck.Zcorn[1:]

	var buf bytes.Buffer
	assert.ErrorIs(t, grdecl.Encode(&buf, deck), cpgrid.ErrArrayLengthMismatch)
	assert.Zero(t, buf.Len(), "nothing is written for an invalid deck")
}

func TestFile_PlainAndGzip(t *testing.T) {
	deck := perturbedDeck(t)
	dir := t.TempDir()

	for _, name := range []string{"grid.grdecl", "grid.grdecl.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, grdecl.WriteFile(path, deck))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			if strings.HasSuffix(name, ".gz") {
				require.GreaterOrEqual(t, len(raw), 2)
				assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")
			} else {
				assert.True(t, bytes.HasPrefix(raw, []byte(grdecl.KeywordSpecgrid)))
			}

			got, err := grdecl.ReadFile(path)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(deck, got))
		})
	}

	_, err := grdecl.ReadFile(filepath.Join(dir, "missing.grdecl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
