// Package vlist renders large fixed-height lists by painting only the window
// of items that intersects the viewport, plus a buffer.
//
// A Type, built with Create, fixes the buffer size and the render callback.
// Instances are created from a Type with items and an item height, then
// driven through a small lifecycle:
//
//	list, _ := typ.New(items, 1)
//	_ = list.Mount(env, element, host)   // subscribe to scroll and resize, render once
//	_ = next.Update(list, element)       // hand subscriptions to a new instance
//	next.Unmount()                       // detach subscriptions
//
// Every recomputation resolves the list's position with package geometry,
// computes the window with package window, shapes the visible slice and its
// spacer styles, and hands the result to the host Renderer. All of this runs
// synchronously on the caller's goroutine.
package vlist
