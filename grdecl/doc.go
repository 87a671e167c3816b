// SPDX-License-Identifier: MIT

// Package grdecl reads and writes corner-point grids as keyword decks:
//
//	SPECGRID
//	  4 4 4 1 F /
//	COORD
//	  0 0 0 0 0 4 1 0 0 1 0 4 ...
//	/
//	ZCORN
//	  16*0 16*1 ...
//	/
//	ACTNUM
//	  64*1 /
//
// COORD, ZCORN and ACTNUM values are written in exactly the cpgrid layout order
// and read back without reordering, so a decoded deck is bit-for-bit the deck
// that was encoded. Floats use the shortest representation that round-trips,
// and runs of equal values are written as N*value.
//
// Lines starting with "--" (and the remainder of any line after "--") are
// comments. Keywords other than the four above are skipped up to their
// terminating "/".
//
// WriteFile and ReadFile gzip the stream when the path ends in ".gz".
package grdecl
