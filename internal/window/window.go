// Package window computes which item indices of a fixed-height list intersect
// a viewport band.
//
// All geometry is expressed in document coordinates (rows from the top of the
// scrollable document). The calculation is pure and safe to call on every
// scroll or resize event.
package window

import (
	"errors"
	"fmt"
)

// ErrInvalidItemHeight indicates a non-positive item height. Division by the
// item height is undefined for such values, so callers must reject them before
// asking for bounds.
var ErrInvalidItemHeight = errors.New("item height must be greater than zero")

// Params holds the raw inputs of a window computation.
type Params struct {
	ItemCount  int
	ItemHeight int
	// Buffer is the number of extra items rendered above and below the
	// strictly visible range. Negative values behave like zero.
	Buffer int
	// ViewTop and ViewBottom delimit the visible band of the viewport.
	ViewTop    int
	ViewBottom int
	// ListTop is the list's offset from the top of the document.
	ListTop int
}

// Range is the window [First, Last] of item indices selected for rendering.
type Range struct {
	First int
	Last  int
}

// Len returns Last - First.
func (r Range) Len() int {
	return r.Last - r.First
}

// Contains reports whether index lies inside the window.
func (r Range) Contains(index int) bool {
	return index >= r.First && index <= r.Last
}

// String returns the window as "[first, last]".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.First, r.Last)
}

// ListHeight returns the total height of count items of the given height.
func ListHeight(count, itemHeight int) int {
	return count * itemHeight
}

// Bounds returns the window of items that intersect the viewport band,
// widened by p.Buffer items on both sides.
//
// The result always satisfies 0 <= First <= Last <= ItemCount. Bounds panics
// with ErrInvalidItemHeight when p.ItemHeight <= 0.
func Bounds(p Params) Range {
	if p.ItemHeight <= 0 {
		panic(fmt.Errorf("window.Bounds: %w (got %d)", ErrInvalidItemHeight, p.ItemHeight))
	}
	if p.ItemCount <= 0 {
		return Range{}
	}

	buffer := max(0, p.Buffer)
	listHeight := ListHeight(p.ItemCount, p.ItemHeight)

	listViewTop := max(0, p.ViewTop-p.ListTop)
	listViewBottom := max(0, min(listHeight, p.ViewBottom-p.ListTop))

	first := max(0, listViewTop/p.ItemHeight-buffer)
	last := min(p.ItemCount, ceilDiv(listViewBottom, p.ItemHeight)+buffer)

	// A band that starts below the end of the list, or an inverted band,
	// would otherwise leave first beyond last.
	if first > last {
		first = last
	}

	return Range{First: first, Last: last}
}

// ceilDiv returns ceil(n/d) for n >= 0 and d > 0.
func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
