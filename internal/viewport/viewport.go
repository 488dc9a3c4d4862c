package viewport

import (
	"fmt"

	"github.com/rshade/vlist/internal/geometry"
)

// Event names an environment event.
type Event string

const (
	// EventScroll fires after the scroll offset changes.
	EventScroll Event = "scroll"
	// EventResize fires after the viewport height changes.
	EventResize Event = "resize"
)

// Listener is invoked synchronously when its event fires.
type Listener func()

// Subscription pairs an event with a registered listener. It is returned by
// Environment.On and passed back to Environment.Off.
type Subscription struct {
	event Event
	id    uint64
}

// Event returns the subscribed event.
func (s *Subscription) Event() Event {
	if s == nil {
		return ""
	}
	return s.event
}

// String implements fmt.Stringer.
func (s *Subscription) String() string {
	if s == nil {
		return "<nil subscription>"
	}
	return fmt.Sprintf("%s#%d", s.event, s.id)
}

// Environment is the viewport a list is rendered into.
type Environment interface {
	// ScrollOffset returns the number of rows scrolled from the document top.
	ScrollOffset() int
	// Height returns the height of the visible band in rows.
	Height() int
	// Root returns the element all document coordinates are measured from.
	Root() geometry.Element
	// On registers fn for ev and returns its handle.
	On(ev Event, fn Listener) *Subscription
	// Off detaches sub. It reports whether a listener was removed; unknown,
	// nil or already detached handles are ignored.
	Off(sub *Subscription) bool
}
