// Package viewport models the runtime environment a virtual list lives in:
// the scroll offset and height of the visible band, and synchronous "scroll"
// and "resize" listeners registered through detachable handles.
//
// Window is the in-process implementation driven by a terminal host. All
// listeners run on the caller's goroutine inside ScrollTo, ScrollBy and
// Resize, matching a single-threaded event loop.
package viewport
