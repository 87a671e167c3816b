// SPDX-License-Identifier: MIT
// Package: libecl/cpgrid
//
// layout.go — COORD/ZCORN addressing.
//
// All helpers are pure index arithmetic and do not range-check; callers that
// accept user indices check with InBounds first.

package cpgrid

// InBounds reports whether (i,j,k) addresses a cell of d.
// Complexity: O(1).
func (d Dims) InBounds(i, j, k int) bool {
	return i >= 0 && i < d.NX && j >= 0 && j < d.NY && k >= 0 && k < d.NZ
}

// PillarIndex maps lattice position (i,j), 0≤i≤nx, 0≤j≤ny, to j*(nx+1)+i.
func (d Dims) PillarIndex(i, j int) int {
	return j*(d.NX+1) + i
}

// CoordOffset is the COORD position of the first value of pillar (i,j).
func (d Dims) CoordOffset(i, j int) int {
	return CoordPerPillar * d.PillarIndex(i, j)
}

// CellIndex maps (i,j,k) to the row-major cell index with k outermost.
func (d Dims) CellIndex(i, j, k int) int {
	return (k*d.NY+j)*d.NX + i
}

// CellIJK inverts CellIndex.
func (d Dims) CellIJK(g int) (i, j, k int) {
	layer := d.NX * d.NY
	k = g / layer
	rem := g % layer

	return rem % d.NX, rem / d.NX, k
}

// ZcornOffset is the ZCORN position of the first corner of cell (i,j,k).
func (d Dims) ZcornOffset(i, j, k int) int {
	return CornersPerCell * d.CellIndex(i, j, k)
}

// CornerIndex composes a corner sub-index from its axis bits.
// ck=0 selects the top face, ck=1 the bottom face.
func CornerIndex(ci, cj, ck int) int {
	return 4*ck + 2*cj + ci
}

// CornerAxes splits a corner sub-index into its axis bits.
func CornerAxes(c int) (ci, cj, ck int) {
	return c & 1, (c >> 1) & 1, (c >> 2) & 1
}
