// SPDX-License-Identifier: MIT
// Package: libecl/grdecl
//
// encode.go — writing decks.

package grdecl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// Keywords understood by Encode and Decode.
const (
	KeywordSpecgrid = "SPECGRID"
	KeywordCoord    = "COORD"
	KeywordZcorn    = "ZCORN"
	KeywordActnum   = "ACTNUM"
)

// tokensPerLine bounds the width of data lines.
const tokensPerLine = 6

// Deck is a grid in array form. A nil Actnum means every cell is active and
// the ACTNUM keyword is omitted.
type Deck struct {
	Dims   cpgrid.Dims
	Coord  []float64
	Zcorn  []float64
	Actnum []int
}

// Validate checks the array lengths against Dims.
func (d *Deck) Validate() error {
	return cpgrid.CheckArrays(d.Dims, d.Coord, d.Zcorn, d.Actnum)
}

// Encode writes deck to w.
func Encode(w io.Writer, deck *Deck) error {
	if err := deck.Validate(); err != nil {
		return fmt.Errorf("grdecl: encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n  %d %d %d 1 F /\n\n", KeywordSpecgrid, deck.Dims.NX, deck.Dims.NY, deck.Dims.NZ)
	writeFloats(bw, KeywordCoord, deck.Coord)
	writeFloats(bw, KeywordZcorn, deck.Zcorn)
	if deck.Actnum != nil {
		writeRuns(bw, KeywordActnum, deck.Actnum,
			func(a, b int) bool { return a == b },
			strconv.Itoa)
	}

	return bw.Flush()
}

func writeFloats(bw *bufio.Writer, keyword string, vals []float64) {
	writeRuns(bw, keyword, vals,
		func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) },
		func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
}

// writeRuns writes one keyword record, collapsing runs of values equal under
// same into N*value. Only the first value of a run is formatted. Errors are
// sticky in bw and surface from Flush.
func writeRuns[T any](bw *bufio.Writer, keyword string, vals []T, same func(a, b T) bool, format func(T) string) {
	bw.WriteString(keyword)
	bw.WriteByte('\n')

	onLine := 0
	for i := 0; i < len(vals); {
		run := 1
		for i+run < len(vals) && same(vals[i], vals[i+run]) {
			run++
		}
		if onLine == tokensPerLine {
			bw.WriteByte('\n')
			onLine = 0
		}
		if onLine == 0 {
			bw.WriteString(" ")
		}
		bw.WriteByte(' ')
		if run > 1 {
			bw.WriteString(strconv.Itoa(run))
			bw.WriteByte('*')
		}
		bw.WriteString(format(vals[i]))
		onLine++
		i += run
	}
	bw.WriteString("\n/\n\n")
}
