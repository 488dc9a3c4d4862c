package vlist

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/rshade/vlist/internal/logging"
)

// Type is a list configuration: a buffer size and a render callback. It plays
// the role of a component class; instances come from New.
type Type[T any] struct {
	buffer int
	render RenderFunc[T]
}

// Create returns a list type rendering buffer extra items on each side of the
// visible range through render.
func Create[T any](buffer int, render RenderFunc[T]) *Type[T] {
	return &Type[T]{buffer: buffer, render: render}
}

// Buffer returns the configured buffer size.
func (t *Type[T]) Buffer() int {
	return t.buffer
}

// Option configures a List at construction.
type Option[T any] func(*List[T])

// WithLogger sets the logger used for lifecycle events.
func WithLogger[T any](l zerolog.Logger) Option[T] {
	return func(list *List[T]) {
		list.log = logging.ComponentLogger(l, "vlist")
	}
}

// WithItemsEqual replaces the comparison Update uses to decide whether the
// item collection changed.
func WithItemsEqual[T any](eq func(a, b []T) bool) Option[T] {
	return func(list *List[T]) {
		if eq != nil {
			list.equal = eq
		}
	}
}

// New creates an unmounted list instance of this type.
func (t *Type[T]) New(items []T, itemHeight int, opts ...Option[T]) (*List[T], error) {
	if itemHeight <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidItemHeight, itemHeight)
	}
	if t == nil || t.render == nil {
		return nil, ErrNilRenderFunc
	}

	l := &List[T]{
		typ:        t,
		id:         logging.NewID(),
		items:      items,
		itemHeight: itemHeight,
		equal:      itemsEqual[T],
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With().Str("list_id", l.id).Logger()

	return l, nil
}

// itemsEqual treats two slices sharing a backing array and length as equal
// without inspecting elements, and falls back to a deep comparison otherwise.
func itemsEqual[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || &a[0] == &b[0] {
		return true
	}
	return reflect.DeepEqual(a, b)
}
