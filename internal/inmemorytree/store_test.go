package inmemorytree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/specialistvlad/orgchart/internal/nodeid"
	"github.com/specialistvlad/orgchart/internal/nodestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOrg is the CEO hierarchy used throughout the engine tests.
func seedOrg() *node.Node {
	return node.New(1, "Mark Zuckerberg",
		node.New(2, "Sarah Donald",
			node.New(4, "Cassandra Reynolds",
				node.New(5, "Mary Blue"),
				node.New(6, "Bob Saget",
					node.New(7, "Tina Teff",
						node.New(8, "Will Turner"),
					),
				),
			),
		),
		node.New(3, "Tyler Simpson"),
	)
}

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(seedOrg())
	require.NoError(t, err)
	return s
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := seedOrg()
	s, err := New(seed)
	require.NoError(t, err)

	seed.Children[0].Name = "mutated"
	n, ok := s.FindNode(2)
	require.True(t, ok)
	assert.Equal(t, "Sarah Donald", n.Name)
	assert.Equal(t, 8, s.Len())
}

func TestNew_RejectsDuplicates(t *testing.T) {
	seed := node.New(1, "root", node.New(2, "a"), node.New(3, "b", node.New(2, "again")))
	_, err := New(seed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nodestore.ErrDuplicateID))
	assert.Contains(t, err.Error(), "2")
}

func TestNew_RejectsNilRoot(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, nodestore.ErrNilRoot)
}

func TestFindNode(t *testing.T) {
	s := newStore(t)

	for _, id := range []nodeid.ID{1, 2, 3, 4, 5, 6, 7, 8} {
		n, ok := s.FindNode(id)
		require.True(t, ok, "id %d", id)
		assert.Equal(t, id, n.ID)
	}

	n, ok := s.FindNode(99)
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestFindNode_ReturnsLiveReference(t *testing.T) {
	s := newStore(t)
	n, ok := s.FindNode(3)
	require.True(t, ok)

	n.AppendChild(node.New(42, "new hire"))

	found, ok := s.FindNode(42)
	require.True(t, ok)
	assert.Equal(t, "new hire", found.Name)
}

func TestFindParent(t *testing.T) {
	s := newStore(t)

	cases := map[nodeid.ID]nodeid.ID{2: 1, 3: 1, 4: 2, 5: 4, 6: 4, 7: 6, 8: 7}
	for child, want := range cases {
		p, ok := s.FindParent(child)
		require.True(t, ok, "child %d", child)
		assert.Equal(t, want, p.ID, "parent of %d", child)
	}
}

func TestFindParent_RootAndMissing(t *testing.T) {
	s := newStore(t)

	_, ok := s.FindParent(1)
	assert.False(t, ok, "root has no parent")

	_, ok = s.FindParent(99)
	assert.False(t, ok)
}

func TestIsDescendant(t *testing.T) {
	s := newStore(t)

	assert.True(t, s.IsDescendant(1, 8))
	assert.True(t, s.IsDescendant(6, 7))
	assert.True(t, s.IsDescendant(6, 8))
	assert.False(t, s.IsDescendant(6, 6), "a node is not its own descendant")
	assert.False(t, s.IsDescendant(8, 6))
	assert.False(t, s.IsDescendant(3, 2))
	assert.False(t, s.IsDescendant(99, 1))
	assert.False(t, s.IsDescendant(1, 99))
}

func TestDeepChain_NoRecursionLimit(t *testing.T) {
	const depth = 200000
	root := node.New(0, "n0")
	cur := root
	for i := 1; i < depth; i++ {
		next := node.New(nodeid.ID(i), "n")
		cur.AppendChild(next)
		cur = next
	}

	s, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, depth, s.Len())

	p, ok := s.FindParent(depth - 1)
	require.True(t, ok)
	assert.Equal(t, nodeid.ID(depth-2), p.ID)
	assert.True(t, s.IsDescendant(0, depth-1))
}

func TestRoot(t *testing.T) {
	s := newStore(t)
	if diff := cmp.Diff(seedOrg(), s.Root()); diff != "" {
		t.Errorf("root mismatch (-want +got):\n%s", diff)
	}
}
