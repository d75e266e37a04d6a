// Package grid computes rectangular layouts for tiling a number of items,
// such as image thumbnails, before they are handed to the plotting library.
//
// The layout side is ceil(sqrt(n)). A square grid uses that side for both
// dimensions. A compact (non-square) grid drops one row whenever the items
// still fit, so six items become 2x3 instead of 3x3:
//
//	rows, cols, err := grid.Size(6, false) // 2, 3, nil
//
// All functions are pure and safe for concurrent use.
package grid

import (
	"fmt"
	"math"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// MaxItems is the largest n whose square grid still has an int cell count.
var MaxItems = maxItems()

func maxItems() int {
	s := floorSqrt(math.MaxInt)
	return s * s
}

// Shape is a grid layout of Rows x Cols cells.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// For returns the grid shape that fits n items.
//
// n must be in [1, MaxItems]; otherwise an error with code
// [errors.ErrCodeInvalidArgument] is returned. When square is true the
// shape always has Rows == Cols.
func For(n int, square bool) (Shape, error) {
	if n < 1 {
		return Shape{}, errors.New(errors.ErrCodeInvalidArgument, "n needs to be at least one")
	}
	if n > MaxItems {
		return Shape{}, errors.New(errors.ErrCodeInvalidArgument, "n must be at most %d", MaxItems)
	}

	side := ceilSqrt(n)
	if !square && n <= side*(side-1) {
		return Shape{Rows: side - 1, Cols: side}, nil
	}
	return Shape{Rows: side, Cols: side}, nil
}

// Size is For returning plain (rows, columns).
func Size(n int, square bool) (rows, cols int, err error) {
	s, err := For(n, square)
	if err != nil {
		return 0, 0, err
	}
	return s.Rows, s.Cols, nil
}

// ceilSqrt returns the smallest integer s with s*s >= n, for n >= 1.
func ceilSqrt(n int) int {
	s := floorSqrt(n)
	if s*s < n {
		s++
	}
	return s
}

// floorSqrt returns the largest integer s with s*s <= n, for n >= 0.
// The float estimate is corrected with divisions, which cannot overflow.
func floorSqrt(n int) int {
	s := int(math.Sqrt(float64(n)))
	for s > 0 && s > n/s {
		s--
	}
	for s+1 <= n/(s+1) {
		s++
	}
	return s
}

// Cells returns the number of cells in the grid.
func (s Shape) Cells() int { return s.Rows * s.Cols }

// Fits reports whether n items fit into the grid.
func (s Shape) Fits(n int) bool { return n >= 0 && n <= s.Cells() }

// Unused returns how many cells stay empty when n items are placed.
func (s Shape) Unused(n int) int {
	if !s.Fits(n) {
		return 0
	}
	return s.Cells() - n
}

// Cell returns the row-major position of item i. A shape without
// columns places every item at (0, 0).
func (s Shape) Cell(i int) (row, col int) {
	if s.Cols < 1 {
		return 0, 0
	}
	return i / s.Cols, i % s.Cols
}

func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
