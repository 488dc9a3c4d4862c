package vlist

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/vlist/internal/geometry"
	"github.com/rshade/vlist/internal/viewport"
	"github.com/rshade/vlist/internal/window"
)

// Renderer is the host rendering pipeline. Render receives the view produced
// by the list's RenderFunc on every recomputation.
type Renderer interface {
	Render(view string)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(view string)

// Render implements Renderer.
func (f RendererFunc) Render(view string) {
	f(view)
}

// State is the lifecycle state of a List.
type State int

const (
	// StateNew is a constructed list that owns no resources yet.
	StateNew State = iota
	// StateMounted is a list owning the rendering surface and subscriptions.
	StateMounted
	// StateHandedOff is a list whose resources moved to a successor in Update.
	StateHandedOff
	// StateUnmounted is terminal: subscriptions have been detached.
	StateUnmounted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateMounted:
		return "mounted"
	case StateHandedOff:
		return "handed-off"
	case StateUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// surface is the rendering surface shared by consecutive instances of a list.
// Subscriptions close over the surface, never over an instance, so after an
// Update they recompute against the successor and its element.
type surface[T any] struct {
	env     viewport.Environment
	host    Renderer
	element geometry.Element
	live    *List[T]
}

func (s *surface[T]) refresh() {
	if s.live == nil {
		return
	}
	s.live.renderContent(s.element)
}

// List is one instance of a virtual list. Its window (first, last) is derived
// state, written only by recomputation.
type List[T any] struct {
	typ        *Type[T]
	id         string
	items      []T
	itemHeight int
	equal      func(a, b []T) bool
	log        zerolog.Logger

	state       State
	first, last int
	renders     int

	surface  *surface[T]
	onScroll *viewport.Subscription
	onResize *viewport.Subscription
}

// Mount binds the list to element inside env, subscribes to scroll and resize
// events and renders once through host.
func (l *List[T]) Mount(env viewport.Environment, element geometry.Element, host Renderer) error {
	if l.state != StateNew {
		return fmt.Errorf("mount: %w (state %s)", ErrAlreadyMounted, l.state)
	}
	if env == nil {
		return fmt.Errorf("mount: %w", ErrNilEnvironment)
	}
	if host == nil {
		return fmt.Errorf("mount: %w", ErrNilRenderer)
	}

	s := &surface[T]{env: env, host: host, element: element, live: l}
	l.surface = s
	l.onScroll = env.On(viewport.EventScroll, s.refresh)
	l.onResize = env.On(viewport.EventResize, s.refresh)
	l.state = StateMounted

	l.log.Debug().
		Int("items", len(l.items)).
		Int("item_height", l.itemHeight).
		Int("buffer", l.Buffer()).
		Msg("list mounted")

	l.renderContent(element)
	return nil
}

// Update makes l the successor of previous. The rendering surface and both
// subscriptions move from previous to l; previous keeps no references and
// ends in StateHandedOff. When item height, buffer and items all match
// previous, nothing is recomputed or rendered.
func (l *List[T]) Update(previous *List[T], element geometry.Element) error {
	if previous == nil || previous.state != StateMounted {
		return fmt.Errorf("update: %w", ErrNotMounted)
	}
	if l == previous || l.state != StateNew {
		return fmt.Errorf("update: %w (state %s)", ErrAlreadyMounted, l.state)
	}

	l.surface, previous.surface = previous.surface, nil
	l.onScroll, previous.onScroll = previous.onScroll, nil
	l.onResize, previous.onResize = previous.onResize, nil
	l.first, l.last = previous.first, previous.last
	previous.state = StateHandedOff
	l.state = StateMounted

	l.surface.live = l
	l.surface.element = element

	if l.itemHeight == previous.itemHeight &&
		l.Buffer() == previous.Buffer() &&
		l.equal(l.items, previous.items) {
		l.log.Debug().Str("previous_id", previous.id).Msg("list updated without changes, render skipped")
		return nil
	}

	l.log.Debug().
		Str("previous_id", previous.id).
		Int("items", len(l.items)).
		Msg("list updated")

	l.renderContent(element)
	return nil
}

// Unmount detaches both subscriptions. Calling it on a list that does not own
// them, or calling it twice, does nothing.
func (l *List[T]) Unmount() {
	if l.state != StateMounted {
		return
	}

	env := l.surface.env
	for _, sub := range []*viewport.Subscription{l.onScroll, l.onResize} {
		if !env.Off(sub) {
			l.log.Debug().Stringer("subscription", sub).Msg("subscription already detached")
		}
	}

	l.surface.live = nil
	l.surface = nil
	l.onScroll = nil
	l.onResize = nil
	l.state = StateUnmounted

	l.log.Debug().Int("renders", l.renders).Msg("list unmounted")
}

// renderContent recomputes the window for element, stores it and renders the
// shaped content through the host.
func (l *List[T]) renderContent(element geometry.Element) {
	r := l.VisibleBounds(l.surface.env, element)
	l.first, l.last = r.First, r.Last

	l.surface.host.Render(l.typ.render(l.Content()))
	l.renders++

	l.log.Trace().
		Int("first", r.First).
		Int("last", r.Last).
		Int("scroll", l.surface.env.ScrollOffset()).
		Msg("window rendered")
}

// VisibleBounds computes the window of items visible in env when the list is
// laid out at element. It reads live scroll, height and layout values.
func (l *List[T]) VisibleBounds(env viewport.Environment, element geometry.Element) window.Range {
	viewTop := env.ScrollOffset()
	return window.Bounds(window.Params{
		ItemCount:  len(l.items),
		ItemHeight: l.itemHeight,
		Buffer:     l.Buffer(),
		ViewTop:    viewTop,
		ViewBottom: viewTop + env.Height(),
		ListTop:    geometry.TopFrom(element, env.Root()),
	})
}

// Content shapes the current window of the list.
func (l *List[T]) Content() Content[T] {
	return Shape(l.items, l.itemHeight, l.Window())
}

// ID returns the instance id used in log entries.
func (l *List[T]) ID() string {
	return l.id
}

// State returns the lifecycle state.
func (l *List[T]) State() State {
	return l.state
}

// Items returns the item collection.
func (l *List[T]) Items() []T {
	return l.items
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// ItemHeight returns the fixed height of each item.
func (l *List[T]) ItemHeight() int {
	return l.itemHeight
}

// Buffer returns the buffer size of the list's type.
func (l *List[T]) Buffer() int {
	return l.typ.buffer
}

// Type returns the type the list was created from.
func (l *List[T]) Type() *Type[T] {
	return l.typ
}

// First returns the first index of the current window.
func (l *List[T]) First() int {
	return l.first
}

// Last returns the last index of the current window.
func (l *List[T]) Last() int {
	return l.last
}

// Window returns the current window.
func (l *List[T]) Window() window.Range {
	return window.Range{First: l.first, Last: l.last}
}

// Renders returns how many times this instance recomputed and rendered.
func (l *List[T]) Renders() int {
	return l.renders
}

// Subscriptions returns the scroll and resize handles the list owns, or nils.
func (l *List[T]) Subscriptions() (scroll, resize *viewport.Subscription) {
	return l.onScroll, l.onResize
}
