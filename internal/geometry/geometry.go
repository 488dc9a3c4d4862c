package geometry

import "reflect"

// Element is a node of the live layout tree.
//
// TopFrom compares elements by identity. An element whose dynamic type is not
// comparable should implement Same; otherwise it never matches a root.
type Element interface {
	// OffsetTop returns the element's top offset within its offset parent.
	OffsetTop() int
	// OffsetParent returns the nearest positioned ancestor, or nil at the top
	// of the chain.
	OffsetParent() Element
}

// identity is implemented by elements that decide their own identity.
type identity interface {
	Same(other Element) bool
}

// TopFrom returns the cumulative top offset of el measured from root.
//
// The walk stops at root or at an element with no offset parent. A nil el
// contributes zero.
func TopFrom(el, root Element) int {
	top := 0
	for el != nil && !same(el, root) {
		top += el.OffsetTop()
		el = el.OffsetParent()
	}
	return top
}

// same reports whether a and b are the same element. It never panics.
func same(a, b Element) bool {
	if a == nil || b == nil {
		return false
	}
	if id, ok := a.(identity); ok {
		return id.Same(b)
	}
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// isComparable reports whether == on v's dynamic value is defined.
func isComparable(v any) bool {
	return reflect.TypeOf(v).Comparable()
}
