package viewport

import (
	"github.com/rshade/vlist/internal/geometry"
)

type entry struct {
	id uint64
	fn Listener
}

// Window is an Environment backed by plain fields. The host mutates it in
// response to input and terminal resizes; listeners observe the new values.
type Window struct {
	root      *geometry.Box
	scroll    int
	height    int
	docHeight int
	nextID    uint64
	listeners map[Event][]entry
}

// NewWindow creates a window of the given visible height whose document root
// is root. A nil root gets a fresh box.
func NewWindow(root *geometry.Box, height int) *Window {
	if root == nil {
		root = geometry.NewBox("window", nil, 0)
	}
	return &Window{
		root:      root,
		height:    max(0, height),
		listeners: make(map[Event][]entry),
	}
}

// ScrollOffset implements Environment.
func (w *Window) ScrollOffset() int {
	return w.scroll
}

// Height implements Environment.
func (w *Window) Height() int {
	return w.height
}

// Root implements Environment.
func (w *Window) Root() geometry.Element {
	return w.root
}

// RootBox returns the root as a box so hosts can attach children.
func (w *Window) RootBox() *geometry.Box {
	return w.root
}

// DocumentHeight returns the scrollable document height.
func (w *Window) DocumentHeight() int {
	return w.docHeight
}

// MaxScroll returns the largest valid scroll offset.
func (w *Window) MaxScroll() int {
	return max(0, w.docHeight-w.height)
}

// On implements Environment.
func (w *Window) On(ev Event, fn Listener) *Subscription {
	w.nextID++
	w.listeners[ev] = append(w.listeners[ev], entry{id: w.nextID, fn: fn})
	return &Subscription{event: ev, id: w.nextID}
}

// Off implements Environment.
func (w *Window) Off(sub *Subscription) bool {
	if sub == nil {
		return false
	}
	entries := w.listeners[sub.event]
	for i, e := range entries {
		if e.id != sub.id {
			continue
		}
		w.listeners[sub.event] = append(entries[:i:i], entries[i+1:]...)
		return true
	}
	return false
}

// ListenerCount returns the number of live listeners for ev.
func (w *Window) ListenerCount(ev Event) int {
	return len(w.listeners[ev])
}

// SetDocumentHeight sets the scrollable extent and re-clamps the scroll
// offset, firing a scroll event if the offset moved.
func (w *Window) SetDocumentHeight(h int) {
	w.docHeight = max(0, h)
	w.ScrollTo(w.scroll)
}

// ScrollTo moves the scroll offset to y, clamped to [0, MaxScroll]. Scroll
// listeners fire only when the offset changes.
func (w *Window) ScrollTo(y int) {
	y = min(max(0, y), w.MaxScroll())
	if y == w.scroll {
		return
	}
	w.scroll = y
	w.dispatch(EventScroll)
}

// ScrollBy moves the scroll offset by delta rows.
func (w *Window) ScrollBy(delta int) {
	w.ScrollTo(w.scroll + delta)
}

// Resize changes the visible height. The scroll offset is re-clamped first,
// then resize listeners fire once; a clamp caused by the resize does not fire
// a separate scroll event.
func (w *Window) Resize(height int) {
	height = max(0, height)
	if height == w.height {
		return
	}
	w.height = height
	w.scroll = min(w.scroll, w.MaxScroll())
	w.dispatch(EventResize)
}

// dispatch calls the listeners registered for ev. The slice is copied first so
// a listener may detach itself or others without skipping entries.
func (w *Window) dispatch(ev Event) {
	entries := append([]entry(nil), w.listeners[ev]...)
	for _, e := range entries {
		e.fn()
	}
}
