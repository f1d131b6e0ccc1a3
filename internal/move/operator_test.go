package move

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/orgchart/internal/history"
	"github.com/specialistvlad/orgchart/internal/inmemorytree"
	"github.com/specialistvlad/orgchart/internal/node"
	"github.com/specialistvlad/orgchart/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func setup(t *testing.T) (*Operator, *inmemorytree.Store) {
	t.Helper()
	store, err := inmemorytree.New(seedOrg())
	require.NoError(t, err)
	return New(store), store
}

func childrenOf(t *testing.T, store *inmemorytree.Store, id nodeid.ID) []nodeid.ID {
	t.Helper()
	n, ok := store.FindNode(id)
	require.True(t, ok, "node %d", id)
	return n.ChildIDs()
}

func TestApply_BobUnderTina(t *testing.T) {
	op, store := setup(t)

	entry, err := op.Apply(6, 7)
	require.NoError(t, err)

	assert.Equal(t, history.Entry{
		NodeID:            6,
		PreviousParentID:  4,
		NewParentID:       7,
		PreviousIndex:     1,
		RelocatedChildIDs: []nodeid.ID{7},
	}, entry)

	assert.Equal(t, []nodeid.ID{5, 7}, childrenOf(t, store, 4), "Tina is promoted to Cassandra")
	assert.Equal(t, []nodeid.ID{8, 6}, childrenOf(t, store, 7), "Bob is appended after Will")
	assert.Empty(t, childrenOf(t, store, 6))
}

func TestApply_PromotesAllChildrenInOrder(t *testing.T) {
	op, store := setup(t)

	// Cassandra (children Mary, Bob) moves under Tyler.
	_, err := op.Apply(4, 3)
	require.NoError(t, err)

	assert.Equal(t, []nodeid.ID{5, 6}, childrenOf(t, store, 2))
	assert.Equal(t, []nodeid.ID{4}, childrenOf(t, store, 3))
	assert.Empty(t, childrenOf(t, store, 4))
}

func TestApply_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name       string
		nodeID     nodeid.ID
		supervisor nodeid.ID
		want       error
	}{
		{name: "unknown employee", nodeID: 99, supervisor: 1, want: ErrNodeNotFound},
		{name: "root", nodeID: 1, supervisor: 3, want: ErrCannotMoveRoot},
		{name: "root with unknown supervisor", nodeID: 1, supervisor: 99, want: ErrCannotMoveRoot},
		{name: "unknown supervisor", nodeID: 6, supervisor: 99, want: ErrSupervisorNotFound},
		{name: "self", nodeID: 6, supervisor: 6, want: ErrCycleWouldForm},
		{name: "grandchild", nodeID: 6, supervisor: 8, want: ErrCycleWouldForm},
		{name: "deep descendant", nodeID: 2, supervisor: 8, want: ErrCycleWouldForm},
		{name: "already under", nodeID: 2, supervisor: 1, want: ErrAlreadyUnderSupervisor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op, store := setup(t)

			_, err := op.Apply(tc.nodeID, tc.supervisor)
			require.ErrorIs(t, err, tc.want)

			if diff := cmp.Diff(seedOrg(), store.Root()); diff != "" {
				t.Errorf("tree changed on rejected move (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvert_RestoresScenario(t *testing.T) {
	op, store := setup(t)

	entry, err := op.Apply(6, 7)
	require.NoError(t, err)
	require.NoError(t, op.Invert(entry))

	assert.Equal(t, []nodeid.ID{5, 6}, childrenOf(t, store, 4))
	assert.Equal(t, []nodeid.ID{7}, childrenOf(t, store, 6))
	assert.Equal(t, []nodeid.ID{8}, childrenOf(t, store, 7))
	if diff := cmp.Diff(seedOrg(), store.Root()); diff != "" {
		t.Errorf("undo did not restore the tree (-want +got):\n%s", diff)
	}
}

func TestInvert_RestoresPositionOfNonLastChild(t *testing.T) {
	op, store := setup(t)

	// Sarah is the first of the CEO's two children.
	entry, err := op.Apply(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.PreviousIndex)
	assert.Equal(t, []nodeid.ID{3, 4}, childrenOf(t, store, 1))

	require.NoError(t, op.Invert(entry))
	if diff := cmp.Diff(seedOrg(), store.Root()); diff != "" {
		t.Errorf("undo did not restore child order (-want +got):\n%s", diff)
	}
}

func TestReapply_MatchesApply(t *testing.T) {
	op, store := setup(t)

	entry, err := op.Apply(6, 7)
	require.NoError(t, err)
	afterMove := store.Root().Clone()

	require.NoError(t, op.Invert(entry))
	require.NoError(t, op.Reapply(entry))

	if diff := cmp.Diff(afterMove, store.Root()); diff != "" {
		t.Errorf("redo diverged from the original move (-want +got):\n%s", diff)
	}
}

func TestInvert_MismatchLeavesTreeUntouched(t *testing.T) {
	op, store := setup(t)

	// Bob is under Cassandra, not Tyler, so this entry does not describe the tree.
	bogus := history.Entry{NodeID: 6, PreviousParentID: 4, NewParentID: 3, RelocatedChildIDs: []nodeid.ID{7}}
	err := op.Invert(bogus)
	require.ErrorIs(t, err, ErrHistoryMismatch)

	missingChild := history.Entry{NodeID: 3, PreviousParentID: 2, NewParentID: 1, RelocatedChildIDs: []nodeid.ID{99}}
	err = op.Invert(missingChild)
	require.ErrorIs(t, err, ErrHistoryMismatch)

	if diff := cmp.Diff(seedOrg(), store.Root()); diff != "" {
		t.Errorf("tree changed (-want +got):\n%s", diff)
	}
}

func TestReapply_MismatchLeavesTreeUntouched(t *testing.T) {
	op, store := setup(t)

	// Bob's children are [Tina], not [Mary].
	bogus := history.Entry{NodeID: 6, PreviousParentID: 4, NewParentID: 3, RelocatedChildIDs: []nodeid.ID{5}}
	err := op.Reapply(bogus)
	require.ErrorIs(t, err, ErrHistoryMismatch)

	wrongParent := history.Entry{NodeID: 6, PreviousParentID: 2, NewParentID: 3, RelocatedChildIDs: []nodeid.ID{7}}
	err = op.Reapply(wrongParent)
	require.ErrorIs(t, err, ErrHistoryMismatch)

	if diff := cmp.Diff(seedOrg(), store.Root()); diff != "" {
		t.Errorf("tree changed (-want +got):\n%s", diff)
	}
}

func TestSequence_UndoInReverseOrder(t *testing.T) {
	op, store := setup(t)

	var entries []history.Entry
	for _, m := range [][2]nodeid.ID{{6, 7}, {4, 3}, {7, 1}, {8, 5}, {2, 3}} {
		e, err := op.Apply(m[0], m[1])
		require.NoError(t, err, "move %v", m)
		entries = append(entries, e)
	}

	for i := len(entries) - 1; i >= 0; i-- {
		require.NoError(t, op.Invert(entries[i]), "undo %d", i)
	}

	if diff := cmp.Diff(seedOrg(), store.Root()); diff != "" {
		t.Errorf("undoing every move did not restore the seed (-want +got):\n%s", diff)
	}
}
