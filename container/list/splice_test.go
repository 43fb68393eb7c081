package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		scenario    string
		index       int
		removeCount int
		items       []int
		removed     []int
		values      []int
	}{
		{
			scenario:    "splicing at the start replaces the front values",
			index:       0,
			removeCount: 3,
			items:       []int{100, 200, 300},
			removed:     []int{1, 2, 3},
			values:      []int{100, 200, 300, 4, 5, 6},
		},

		{
			scenario:    "splicing at the start with fewer removals keeps the insertion order",
			index:       0,
			removeCount: 2,
			items:       []int{100, 200, 300},
			removed:     []int{1, 2},
			values:      []int{100, 200, 300, 3, 4, 5, 6},
		},

		{
			scenario:    "splicing beyond the end appends the items",
			index:       100,
			removeCount: 3,
			items:       []int{100, 200, 300},
			removed:     []int{},
			values:      []int{1, 2, 3, 4, 5, 6, 100, 200, 300},
		},

		{
			scenario:    "splicing in the middle removes and inserts values",
			index:       1,
			removeCount: 2,
			items:       []int{100, 200, 300},
			removed:     []int{2, 3},
			values:      []int{1, 100, 200, 300, 4, 5, 6},
		},

		{
			scenario:    "splicing without removals inserts before the index",
			index:       2,
			removeCount: 0,
			items:       []int{100, 200, 300},
			removed:     []int{},
			values:      []int{1, 2, 100, 200, 300, 3, 4, 5, 6},
		},

		{
			scenario:    "splicing without items only removes values",
			index:       2,
			removeCount: 2,
			removed:     []int{3, 4},
			values:      []int{1, 2, 5, 6},
		},

		{
			scenario:    "removals stop at the end of the list",
			index:       4,
			removeCount: 10,
			items:       []int{100},
			removed:     []int{5, 6},
			values:      []int{1, 2, 3, 4, 100},
		},

		{
			scenario:    "splicing at the last index replaces the back value",
			index:       5,
			removeCount: 1,
			items:       []int{100, 200},
			removed:     []int{6},
			values:      []int{1, 2, 3, 4, 5, 100, 200},
		},

		{
			scenario:    "splicing at the last index without removals appends the items",
			index:       5,
			removeCount: 0,
			items:       []int{100},
			removed:     []int{},
			values:      []int{1, 2, 3, 4, 5, 6, 100},
		},

		{
			scenario:    "removing every value and inserting rebuilds the list",
			index:       0,
			removeCount: 6,
			items:       []int{7, 8},
			removed:     []int{1, 2, 3, 4, 5, 6},
			values:      []int{7, 8},
		},

		{
			scenario:    "removing every value without items empties the list",
			index:       0,
			removeCount: 6,
			removed:     []int{1, 2, 3, 4, 5, 6},
			values:      []int{},
		},

		{
			scenario:    "a negative remove count removes nothing",
			index:       3,
			removeCount: -1,
			items:       []int{100},
			removed:     []int{},
			values:      []int{1, 2, 3, 100, 4, 5, 6},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			list := Of(1, 2, 3, 4, 5, 6)

			removed, err := list.Splice(test.index, test.removeCount, test.items...)
			require.NoError(t, err)

			assertList(t, removed, test.removed...)
			assertList(t, list, test.values...)
		})
	}
}

func TestSpliceEmptyList(t *testing.T) {
	list := New[int]()

	removed, err := list.Splice(0, 0, 1, 2, 3)
	require.NoError(t, err)

	assertList(t, removed)
	assertList(t, list, 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(list.All()))
}

func TestSpliceAtTailAppends(t *testing.T) {
	list := Of(1, 2, 3)

	removed, err := list.Splice(2, 0, 9)
	require.NoError(t, err)

	assertList(t, removed)
	assertList(t, list, 1, 2, 3, 9)

	removed, err = list.Splice(3, 0, 10, 11)
	require.NoError(t, err)

	assertList(t, removed)
	assertList(t, list, 1, 2, 3, 9, 10, 11)
}

func TestSpliceReturnsRemovedNodes(t *testing.T) {
	list := Of(1, 2, 3, 4)
	second := list.Front().Next()

	removed, err := list.Splice(1, 1)
	require.NoError(t, err)

	assert.Same(t, second, removed.Front())
	assert.Same(t, removed, second.List())
	assertList(t, list, 1, 3, 4)
}

func TestSpliceNegativeIndex(t *testing.T) {
	list := Of(1, 2, 3)

	removed, err := list.Splice(-1, 1, 100)
	assertErrorCode(t, ErrInvalidIndex, err)
	assert.Nil(t, removed)
	assertList(t, list, 1, 2, 3)
}

func TestSpliceInsertedNodesAreOwned(t *testing.T) {
	list := Of(1, 2, 3)

	_, err := list.Splice(1, 1, 10, 20)
	require.NoError(t, err)
	assertList(t, list, 1, 10, 20, 3)

	node, err := list.Node(2)
	require.NoError(t, err)
	list.Remove(node)
	assertList(t, list, 1, 10, 3)
}
