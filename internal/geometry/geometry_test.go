package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/geometry"
)

// mapProvider is a Provider backed by plain lookup tables.
type mapProvider struct {
	tops    map[geometry.NodeID]int
	parents map[geometry.NodeID]geometry.NodeID
	reads   int
}

func (p *mapProvider) OffsetTop(id geometry.NodeID) int {
	p.reads++
	return p.tops[id]
}

func (p *mapProvider) OffsetParent(id geometry.NodeID) (geometry.NodeID, bool) {
	parent, ok := p.parents[id]
	return parent, ok
}

func TestTopFrom_NilElement(t *testing.T) {
	root := geometry.NewBox("root", nil, 0)
	assert.Equal(t, 0, geometry.TopFrom(nil, root))
	assert.Equal(t, 0, geometry.TopFrom(nil, nil))
}

func TestTopFrom_StopsAtRoot(t *testing.T) {
	screen := geometry.NewBox("screen", nil, 100)
	page := geometry.NewBox("page", screen, 4)
	list := geometry.NewBox("list", page, 3)

	assert.Equal(t, 7, geometry.TopFrom(list, screen))
	assert.Equal(t, 0, geometry.TopFrom(screen, screen))
	assert.Equal(t, 3, geometry.TopFrom(list, page))
}

func TestTopFrom_WalksToTopWithoutRoot(t *testing.T) {
	screen := geometry.NewBox("screen", nil, 2)
	list := geometry.NewBox("list", screen, 5)

	// Without a matching root the walk includes the top-most ancestor.
	assert.Equal(t, 7, geometry.TopFrom(list, nil))
	assert.Equal(t, 7, geometry.TopFrom(list, geometry.NewBox("other", nil, 0)))
}

func TestTopFrom_ReadsLiveLayout(t *testing.T) {
	screen := geometry.NewBox("screen", nil, 0)
	header := geometry.NewBox("header", screen, 0)
	list := geometry.NewBox("list", screen, 1)

	assert.Equal(t, 1, geometry.TopFrom(list, screen))

	header.SetHeight(4)
	list.SetTop(header.Bottom())
	assert.Equal(t, 4, geometry.TopFrom(list, screen))
}

func TestBox_OffsetParentOfRootIsNil(t *testing.T) {
	root := geometry.NewBox("root", nil, 0)
	assert.Nil(t, root.OffsetParent())
}

func TestWrap_Provider(t *testing.T) {
	p := &mapProvider{
		tops:    map[geometry.NodeID]int{1: 0, 2: 10, 3: 6},
		parents: map[geometry.NodeID]geometry.NodeID{3: 2, 2: 1},
	}
	root := geometry.Wrap(p, 1)
	el := geometry.Wrap(p, 3)

	assert.Equal(t, 16, geometry.TopFrom(el, root))
	assert.Equal(t, 16, geometry.TopFrom(el, nil))

	// Offsets are read on every call rather than cached.
	before := p.reads
	p.tops[3] = 1
	assert.Equal(t, 11, geometry.TopFrom(el, root))
	assert.Greater(t, p.reads, before)
}

func TestWrap_MissingParentEndsWalk(t *testing.T) {
	p := &mapProvider{
		tops:    map[geometry.NodeID]int{5: 9},
		parents: map[geometry.NodeID]geometry.NodeID{},
	}
	el := geometry.Wrap(p, 5)

	assert.Nil(t, el.OffsetParent())
	assert.Equal(t, 9, geometry.TopFrom(el, nil))
	assert.Nil(t, geometry.Wrap(nil, 5))
}

// tableProvider is a value-type Provider; its map fields make it
// uncomparable with ==.
type tableProvider struct {
	tops    map[geometry.NodeID]int
	parents map[geometry.NodeID]geometry.NodeID
}

func (p tableProvider) OffsetTop(id geometry.NodeID) int {
	return p.tops[id]
}

func (p tableProvider) OffsetParent(id geometry.NodeID) (geometry.NodeID, bool) {
	parent, ok := p.parents[id]
	return parent, ok
}

func TestWrap_ValueProvider(t *testing.T) {
	p := tableProvider{
		tops:    map[geometry.NodeID]int{1: 40, 2: 7, 3: 5},
		parents: map[geometry.NodeID]geometry.NodeID{3: 2, 2: 1},
	}

	var top int
	require.NotPanics(t, func() {
		top = geometry.TopFrom(geometry.Wrap(p, 3), geometry.Wrap(p, 1))
	})
	assert.Equal(t, 12, top)
	assert.Equal(t, 0, geometry.TopFrom(geometry.Wrap(p, 2), geometry.Wrap(p, 2)))
	assert.Equal(t, 52, geometry.TopFrom(geometry.Wrap(p, 3), nil))
}

func TestWrap_DistinctPointerProviders(t *testing.T) {
	tops := map[geometry.NodeID]int{1: 3, 2: 4}
	parents := map[geometry.NodeID]geometry.NodeID{2: 1}
	a := &mapProvider{tops: tops, parents: parents}
	b := &mapProvider{tops: tops, parents: parents}

	// Node 1 of another provider is not the root of a's tree.
	assert.Equal(t, 7, geometry.TopFrom(geometry.Wrap(a, 2), geometry.Wrap(b, 1)))
	assert.Equal(t, 4, geometry.TopFrom(geometry.Wrap(a, 2), geometry.Wrap(a, 1)))
}

// sliceElement is an Element with an uncomparable dynamic type.
type sliceElement struct {
	tops []int
}

func (e sliceElement) OffsetTop() int {
	return e.tops[0]
}

func (e sliceElement) OffsetParent() geometry.Element {
	if len(e.tops) == 1 {
		return nil
	}
	return sliceElement{tops: e.tops[1:]}
}

func TestTopFrom_UncomparableElement(t *testing.T) {
	el := sliceElement{tops: []int{2, 3, 4}}

	require.NotPanics(t, func() {
		assert.Equal(t, 9, geometry.TopFrom(el, el))
	})
	assert.Equal(t, 9, geometry.TopFrom(el, geometry.NewBox("root", nil, 0)))
}
