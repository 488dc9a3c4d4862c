// Package listview hosts a virtual list inside a Bubble Tea program.
//
// The Model owns a viewport.Window sized from tea.WindowSizeMsg and scrolled
// by keys and the mouse wheel, a small layout tree (screen, header, list
// body), and the mounted vlist.List. Scroll and resize events reach the list
// through its subscriptions; the list renders its window back into the Model,
// which crops the virtual document to the terminal rows on View.
//
// Render cost is O(viewport_height + buffer) regardless of item count, so
// lists of millions of rows start immediately.
package listview
