package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjointSetSingletons(t *testing.T) {
	ds := NewDisjointSet(4)

	for i := 0; i < 4; i++ {
		assert.Equal(t, i, ds.Find(i))
	}
	assert.Len(t, ds.Groups(), 4)
}

func TestDisjointSetUnion(t *testing.T) {
	ds := NewDisjointSet(5)

	ds.Union(0, 1)
	ds.Union(3, 4)

	assert.Equal(t, ds.Find(0), ds.Find(1))
	assert.Equal(t, ds.Find(3), ds.Find(4))
	assert.NotEqual(t, ds.Find(0), ds.Find(2))
	assert.NotEqual(t, ds.Find(0), ds.Find(3))
}

func TestDisjointSetTransitive(t *testing.T) {
	ds := NewDisjointSet(4)

	ds.Union(0, 1)
	ds.Union(1, 2)

	assert.Equal(t, ds.Find(0), ds.Find(2))
}

func TestDisjointSetIdempotentUnion(t *testing.T) {
	ds := NewDisjointSet(3)

	ds.Union(0, 1)
	ds.Union(1, 0)
	ds.Union(0, 1)

	groups := ds.Groups()
	assert.Len(t, groups, 2)
}

func TestDisjointSetGroupsSorted(t *testing.T) {
	ds := NewDisjointSet(6)

	ds.Union(5, 2)
	ds.Union(2, 0)

	groups := ds.Groups()
	require.Len(t, groups, 4)

	members := groups[ds.Find(0)]
	assert.Equal(t, []int{0, 2, 5}, members, "group members come back in ascending index order")
}
