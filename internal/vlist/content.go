package vlist

import (
	"github.com/rshade/vlist/internal/window"
)

// BoxSizing mirrors the CSS box-sizing property.
type BoxSizing string

// BorderBox includes padding in the declared height, so the spacer arithmetic
// is exact.
const BorderBox BoxSizing = "border-box"

// ListStyle sizes the outer spacer. Height covers the whole list so the
// scroll extent is unchanged; PaddingTop pushes the rendered slice down to its
// real position.
type ListStyle struct {
	Height     int
	PaddingTop int
	BoxSizing  BoxSizing
}

// ItemStyle sizes each rendered item.
type ItemStyle struct {
	Height    int
	BoxSizing BoxSizing
}

// Content is the renderable window handed to a RenderFunc.
type Content[T any] struct {
	// Items holds items[First..Last], inclusive.
	Items []T
	// First is the index of Items[0] in the full collection.
	First     int
	ListStyle ListStyle
	ItemStyle ItemStyle
}

// RenderFunc turns a shaped window into the host's renderable view.
type RenderFunc[T any] func(c Content[T]) string

// Shape slices items to the inclusive window r and computes the spacer and
// item styles. The slice is capped so callers cannot append into the
// underlying collection.
func Shape[T any](items []T, itemHeight int, r window.Range) Content[T] {
	first := min(max(0, r.First), len(items))
	end := max(first, min(r.Last+1, len(items)))

	return Content[T]{
		Items: items[first:end:end],
		First: first,
		ListStyle: ListStyle{
			Height:     window.ListHeight(len(items), itemHeight),
			PaddingTop: first * itemHeight,
			BoxSizing:  BorderBox,
		},
		ItemStyle: ItemStyle{
			Height:    itemHeight,
			BoxSizing: BorderBox,
		},
	}
}
