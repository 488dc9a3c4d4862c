package geometry

import "reflect"

// NodeID identifies a node inside a Provider.
type NodeID int

// Provider is a raw layout source. It reports offsets by node id and signals
// a missing offset parent with ok == false.
type Provider interface {
	OffsetTop(id NodeID) int
	OffsetParent(id NodeID) (parent NodeID, ok bool)
}

// providerElement adapts a Provider node to the Element interface.
type providerElement struct {
	provider Provider
	id       NodeID
}

// Wrap adapts the node id of p into an Element. Offset parents are wrapped
// lazily; a node without an offset parent yields a nil Element so TopFrom
// terminates.
func Wrap(p Provider, id NodeID) Element {
	if p == nil {
		return nil
	}
	return providerElement{provider: p, id: id}
}

// Same reports whether other wraps the same node of the same provider.
// Providers whose dynamic type is not comparable are matched by type, so two
// distinct values of such a type are treated as one layout source.
func (e providerElement) Same(other Element) bool {
	o, ok := other.(providerElement)
	if !ok || o.id != e.id {
		return false
	}
	if reflect.TypeOf(e.provider) != reflect.TypeOf(o.provider) {
		return false
	}
	if !isComparable(e.provider) {
		return true
	}
	return e.provider == o.provider
}

func (e providerElement) OffsetTop() int {
	return e.provider.OffsetTop(e.id)
}

func (e providerElement) OffsetParent() Element {
	parent, ok := e.provider.OffsetParent(e.id)
	if !ok {
		return nil
	}
	return providerElement{provider: e.provider, id: parent}
}
