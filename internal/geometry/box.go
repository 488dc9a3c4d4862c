package geometry

// Box is a mutable layout node positioned at a fixed row offset inside its
// parent. A terminal host places its header, list and status areas as boxes
// under a root box representing the screen.
type Box struct {
	Name   string
	top    int
	height int
	parent *Box
}

// NewBox creates a box at top rows below the start of parent. A nil parent
// makes the box a root.
func NewBox(name string, parent *Box, top int) *Box {
	return &Box{Name: name, parent: parent, top: top}
}

// OffsetTop implements Element.
func (b *Box) OffsetTop() int {
	return b.top
}

// OffsetParent implements Element. The nil check keeps a root box from
// returning a typed nil inside the interface.
func (b *Box) OffsetParent() Element {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// SetTop moves the box within its parent.
func (b *Box) SetTop(top int) {
	b.top = top
}

// Height returns the height last assigned with SetHeight.
func (b *Box) Height() int {
	return b.height
}

// SetHeight records the box's height. TopFrom does not use it; hosts use it to
// stack sibling boxes.
func (b *Box) SetHeight(h int) {
	b.height = h
}

// Bottom returns the row just below the box, in its parent's coordinates.
func (b *Box) Bottom() int {
	return b.top + b.height
}
