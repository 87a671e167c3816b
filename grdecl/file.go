// SPDX-License-Identifier: MIT
// Package: libecl/grdecl
//
// file.go — file helpers with optional gzip.

package grdecl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

func gzipped(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// WriteFile encodes deck into path, truncating any existing file.
func WriteFile(path string, deck *Deck) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grdecl: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("grdecl: %w", cerr)
		}
	}()

	if !gzipped(path) {
		return Encode(f, deck)
	}

	zw := gzip.NewWriter(f)
	if err := Encode(zw, deck); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

// ReadFile decodes the deck stored at path.
func ReadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grdecl: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped(path) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("grdecl: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return Decode(r)
}
