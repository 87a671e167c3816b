// SPDX-License-Identifier: MIT
// Package: libecl/grdecl
//
// decode.go — reading decks.

package grdecl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// maxLineLen caps a single input line.
const maxLineLen = 64 << 20

// maxUnsizedRecord caps the expanded length of records read before SPECGRID.
const maxUnsizedRecord = 1 << 24

// tokenizer yields whitespace-separated tokens with comments removed, splitting
// a trailing "/" off its value ("1/" → "1", "/").
type tokenizer struct {
	sc      *bufio.Scanner
	pending []string
	line    int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineLen)

	return &tokenizer{sc: sc}
}

// next returns the next token, or "" and the scanner error (nil at EOF).
func (t *tokenizer) next() (string, error) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			return "", t.sc.Err()
		}
		t.line++
		text := t.sc.Text()
		if i := strings.Index(text, "--"); i >= 0 {
			text = text[:i]
		}
		for _, f := range strings.Fields(text) {
			if f != "/" && strings.HasSuffix(f, "/") {
				t.pending = append(t.pending, strings.TrimSuffix(f, "/"), "/")
				continue
			}
			t.pending = append(t.pending, f)
		}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]

	return tok, nil
}

// record returns the tokens of one keyword record with repeat counts expanded.
// A record that would expand past limit values fails with ErrMalformed before
// the excess is allocated.
func (t *tokenizer) record(keyword string, limit int) ([]string, error) {
	var out []string
	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		switch {
		case tok == "":
			return nil, fmt.Errorf("%s: line %d: record not terminated by '/': %w", keyword, t.line, ErrMalformed)
		case tok == "/":
			return out, nil
		}

		n, val := 1, tok
		if star := strings.IndexByte(tok, '*'); star >= 0 {
			n, err = strconv.Atoi(tok[:star])
			if err != nil || n < 1 || star == len(tok)-1 {
				return nil, fmt.Errorf("%s: line %d: bad repeat %q: %w", keyword, t.line, tok, ErrMalformed)
			}
			val = tok[star+1:]
		}
		if n > limit-len(out) {
			return nil, fmt.Errorf("%s: line %d: record longer than %d values: %w", keyword, t.line, limit, ErrMalformed)
		}
		for i := 0; i < n; i++ {
			out = append(out, val)
		}
	}
}

// Decode reads a deck from r. SPECGRID, COORD and ZCORN are required; the
// array lengths must match SPECGRID. Records longer than SPECGRID allows, or
// longer than maxUnsizedRecord before it, fail with ErrMalformed.
func Decode(r io.Reader) (*Deck, error) {
	t := newTokenizer(r)
	deck := &Deck{}
	var haveSpec, haveCoord, haveZcorn bool

	for {
		kw, err := t.next()
		if err != nil {
			return nil, fmt.Errorf("grdecl: decode: %w", err)
		}
		if kw == "" {
			break
		}

		rec, err := t.record(kw, recordLimit(deck.Dims, haveSpec, kw))
		if err != nil {
			return nil, fmt.Errorf("grdecl: decode: %w", err)
		}

		switch strings.ToUpper(kw) {
		case KeywordSpecgrid:
			if deck.Dims, err = parseSpecgrid(rec); err != nil {
				return nil, fmt.Errorf("grdecl: decode: line %d: %w", t.line, err)
			}
			if err := deck.Dims.Validate(); err != nil {
				return nil, fmt.Errorf("grdecl: decode: line %d: %w", t.line, err)
			}
			haveSpec = true
		case KeywordCoord:
			if deck.Coord, err = parseFloats(kw, rec); err != nil {
				return nil, fmt.Errorf("grdecl: decode: %w", err)
			}
			haveCoord = true
		case KeywordZcorn:
			if deck.Zcorn, err = parseFloats(kw, rec); err != nil {
				return nil, fmt.Errorf("grdecl: decode: %w", err)
			}
			haveZcorn = true
		case KeywordActnum:
			if deck.Actnum, err = parseInts(kw, rec); err != nil {
				return nil, fmt.Errorf("grdecl: decode: %w", err)
			}
		}
	}

	for _, kw := range []struct {
		name string
		ok   bool
	}{{KeywordSpecgrid, haveSpec}, {KeywordCoord, haveCoord}, {KeywordZcorn, haveZcorn}} {
		if !kw.ok {
			return nil, fmt.Errorf("grdecl: decode: %s: %w", kw.name, ErrMissingKeyword)
		}
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("grdecl: decode: %w", err)
	}

	return deck, nil
}

// recordLimit is the most values a keyword record may expand to. Once SPECGRID
// is known, grid arrays may not exceed their exact length and other keywords
// may not exceed the longer of COORD and ZCORN.
func recordLimit(dims cpgrid.Dims, haveSpec bool, keyword string) int {
	if !haveSpec {
		return maxUnsizedRecord
	}
	switch strings.ToUpper(keyword) {
	case KeywordCoord:
		return dims.CoordLen()
	case KeywordActnum:
		return dims.NumCells()
	default:
		return max(dims.CoordLen(), dims.ZcornLen())
	}
}

func parseSpecgrid(rec []string) (cpgrid.Dims, error) {
	if len(rec) < 3 {
		return cpgrid.Dims{}, fmt.Errorf("%s: need nx ny nz, got %d values: %w", KeywordSpecgrid, len(rec), ErrMalformed)
	}
	var n [3]int
	for i := range n {
		v, err := strconv.Atoi(rec[i])
		if err != nil {
			return cpgrid.Dims{}, fmt.Errorf("%s: %q: %w", KeywordSpecgrid, rec[i], ErrMalformed)
		}
		n[i] = v
	}

	return cpgrid.Dims{NX: n[0], NY: n[1], NZ: n[2]}, nil
}

func parseFloats(keyword string, rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: value %d %q: %w", keyword, i, s, ErrMalformed)
		}
		out[i] = v
	}

	return out, nil
}

func parseInts(keyword string, rec []string) ([]int, error) {
	out := make([]int, len(rec))
	for i, s := range rec {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: value %d %q: %w", keyword, i, s, ErrMalformed)
		}
		out[i] = v
	}

	return out, nil
}
