package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet_DescendsThroughMessages(t *testing.T) {
	tree := Tree{
		3: {{Kind: KindMessage, Message: Tree{
			1: {{Kind: KindMessage, Message: Tree{
				37: {{Kind: KindMessage, Message: Tree{
					2: {{Kind: KindVarint, Varint: 1}},
					3: {{Kind: KindString, Str: "Alice"}},
				}}},
			}}},
		}}},
	}

	slot := Get(tree, 3, 1, 37, 2)
	require.Equal(t, uint64(1), slot)

	name := Get(tree, 3, 1, 37, 3)
	require.Equal(t, "Alice", name)
}

func TestGet_MissingPathReturnsNil(t *testing.T) {
	tree := Tree{1: {{Kind: KindVarint, Varint: 5}}}
	require.Nil(t, Get(tree, 2))
	require.Nil(t, Get(tree, 1, 2))
}

func TestGetTree_RequiresMessageAtEveryStep(t *testing.T) {
	tree := Tree{
		3: {{Kind: KindMessage, Message: Tree{
			1: {{Kind: KindVarint, Varint: 9}},
		}}},
	}

	sub, ok := GetTree(tree, 3)
	require.True(t, ok)
	require.Contains(t, sub, 1)

	_, ok = GetTree(tree, 3, 1)
	require.False(t, ok)
}
