// SPDX-License-Identifier: MIT
// Package: libecl/gridgen
//
// bounds.go — index windows for the extractor.
//
// An AxisBound is either Fixed(index) or Range(lower, upper). Both forms are
// normalized to an inclusive (lower, upper) pair by Bounds, and everything
// downstream works on that pair only, so Fixed(n) and Range(n, n) behave
// identically.

package gridgen

import (
	"fmt"

	"github.com/AlexanderSemenyak/libecl/cpgrid"
)

// AxisBound restricts one axis of an IndexWindow.
// The zero value is Range(0, 0).
type AxisBound struct {
	lower, upper int
	fixed        bool
}

// Fixed collapses an axis to the single layer index.
func Fixed(index int) AxisBound {
	return AxisBound{lower: index, upper: index, fixed: true}
}

// Range selects the inclusive index range [lower, upper].
func Range(lower, upper int) AxisBound {
	return AxisBound{lower: lower, upper: upper}
}

// Bounds returns the inclusive (lower, upper) pair.
func (b AxisBound) Bounds() (lower, upper int) {
	return b.lower, b.upper
}

// IsFixed reports whether b was built with Fixed.
func (b AxisBound) IsFixed() bool { return b.fixed }

// Len is the number of layers selected; ≤0 for inverted bounds.
func (b AxisBound) Len() int { return b.upper - b.lower + 1 }

// String renders "n" for Fixed and "lower:upper" for Range.
func (b AxisBound) String() string {
	if b.fixed {
		return fmt.Sprintf("%d", b.lower)
	}

	return fmt.Sprintf("%d:%d", b.lower, b.upper)
}

// validate checks b against an axis of length n.
func (b AxisBound) validate(axis string, n int) error {
	switch {
	case b.lower < 0:
		return fmt.Errorf("axis %s: lower=%d < 0: %w", axis, b.lower, ErrBounds)
	case b.upper >= n:
		return fmt.Errorf("axis %s: upper=%d ≥ %d: %w", axis, b.upper, n, ErrBounds)
	case b.lower > b.upper:
		return fmt.Errorf("axis %s: lower=%d > upper=%d: %w", axis, b.lower, b.upper, ErrBounds)
	}

	return nil
}

// DecompositionParity is the parity of the sum of a window's lower bounds.
type DecompositionParity int

const (
	// EvenParity: the window's corner-sharing phase matches its source grid.
	EvenParity DecompositionParity = iota
	// OddParity: the window starts on the opposite phase.
	OddParity
)

func (p DecompositionParity) String() string {
	if p == EvenParity {
		return "even"
	}

	return "odd"
}

// IndexWindow is the sub-region requested from a grid, one bound per axis.
type IndexWindow struct {
	I, J, K AxisBound
}

// Window is shorthand for IndexWindow{I: i, J: j, K: k}.
func Window(i, j, k AxisBound) IndexWindow {
	return IndexWindow{I: i, J: j, K: k}
}

// FullWindow covers every cell of dims.
func FullWindow(dims cpgrid.Dims) IndexWindow {
	return Window(Range(0, dims.NX-1), Range(0, dims.NY-1), Range(0, dims.NZ-1))
}

// Lower returns the lower bound of each axis.
func (w IndexWindow) Lower() [3]int {
	return [3]int{w.I.lower, w.J.lower, w.K.lower}
}

// Parity returns the decomposition parity of w.
func (w IndexWindow) Parity() DecompositionParity {
	sum := w.I.lower + w.J.lower + w.K.lower
	if sum&1 == 0 {
		return EvenParity
	}

	return OddParity
}

// SubDims returns the dimensions of the grid w selects. Meaningful only for
// windows that pass Validate.
func (w IndexWindow) SubDims() cpgrid.Dims {
	return cpgrid.Dims{NX: w.I.Len(), NY: w.J.Len(), NZ: w.K.Len()}
}

// Validate returns ErrBounds for the first axis (i, j, then k) with
// lower<0, upper≥dimension or lower>upper.
// Complexity: O(1).
func (w IndexWindow) Validate(dims cpgrid.Dims) error {
	if err := w.I.validate("i", dims.NX); err != nil {
		return err
	}
	if err := w.J.validate("j", dims.NY); err != nil {
		return err
	}

	return w.K.validate("k", dims.NZ)
}

// String renders w as "[i j k]".
func (w IndexWindow) String() string {
	return fmt.Sprintf("[%v %v %v]", w.I, w.J, w.K)
}
