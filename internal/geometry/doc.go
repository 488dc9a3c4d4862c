// Package geometry resolves the vertical position of layout elements relative
// to the scrolling root of a document.
//
// Elements expose only their offset within their offset parent. TopFrom walks
// the ancestor chain and sums those offsets on every call, since layout may
// change between renders.
package geometry
