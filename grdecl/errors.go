// SPDX-License-Identifier: MIT

package grdecl

import "errors"

var (
	// ErrMalformed indicates a token or record that cannot be parsed.
	ErrMalformed = errors.New("grdecl: malformed deck")
	// ErrMissingKeyword indicates that SPECGRID, COORD or ZCORN is absent.
	ErrMissingKeyword = errors.New("grdecl: missing keyword")
)
