// SPDX-License-Identifier: MIT

// Package cpgrid holds the corner-point grid data model shared by the
// generator, the extractor and the persistence layer:
//
//   - Dims and CellSize: cell counts and cell extents along (i, j, k).
//   - Layout helpers: the bit-exact COORD and ZCORN addressing convention.
//   - Grid: an immutable grid built from COORD/ZCORN (and an optional ACTNUM
//     mask) that resolves the 3-D position of any cell corner.
//
// Layout convention:
//
//	COORD  (nx+1)·(ny+1) pillars, pillar (i,j) at linear index j*(nx+1)+i,
//	       6 values each: top x,y,z then bottom x,y,z.
//	ZCORN  8 depths per cell, cells ordered k outer, then j, then i.
//	       Inside a cell octet corner c = 4*ck + 2*cj + ci, where ck=0 is the
//	       top face and (ci,cj) select the pillar (i+ci, j+cj).
//	ACTNUM one 0/1 flag per cell, same cell order as ZCORN.
//
// A cell corner is located by taking its depth from ZCORN and intersecting the
// owning pillar line at that depth.
//
// Everything in this package is read-only after construction: a Grid may be
// shared between goroutines without locking.
package cpgrid
