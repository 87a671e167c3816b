// SPDX-License-Identifier: MIT

// Package libecl builds and slices corner-point grids, the pillar-and-depth
// geometry used by reservoir simulators.
//
// A corner-point grid of nx×ny×nz cells is stored as two arrays:
//
//	COORD  one vertical line ("pillar") per lattice intersection, top and
//	       bottom point each, (nx+1)·(ny+1)·6 values
//	ZCORN  eight corner depths per cell, nx·ny·nz·8 values
//
// Subpackages:
//
//	cpgrid/  — dimensions, array layout, and Grid: corner positions from arrays
//	gridgen/ — COORD/ZCORN generators, the assembler, and the sub-grid extractor
//	grdecl/  — keyword deck persistence (SPECGRID/COORD/ZCORN/ACTNUM), optional gzip
//
// Quick ASCII example, one pillar row seen from the side (j fixed):
//
//	 p0      p1      p2        pillars (COORD)
//	 │───────│───────│  z=0    top corners (ZCORN, ck=0)
//	 │ (0,0) │ (1,0) │
//	 │───────│───────│  z=dz   bottom corners (ZCORN, ck=1)
//
// Everything is pure and allocation-explicit: generators and extractors take
// arrays in and return fresh arrays out, with no shared state.
//
//	go get github.com/AlexanderSemenyak/libecl
package libecl
