package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/catalog"
)

func newModel(t *testing.T) (*Model, *catalog.Store) {
	t.Helper()
	seed := catalog.DefaultSeed()
	store := catalog.NewStore(seed.Documents)
	return New(store, seed.Flags), store
}

func TestModel_ListOnlyFlaggedInCatalogOrder(t *testing.T) {
	m, _ := newModel(t)

	got := m.List()
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	assert.Equal(t, 6, got[2].ID)

	require.Len(t, got[0].Flags, 3)
	assert.Equal(t, "Dr. Sarah Mitchell", got[0].Flags[0].User)
	assert.Equal(t, "Emily Chen", got[0].Flags[2].User)
	assert.Equal(t, "Metropolis", got[1].Title)
	assert.Equal(t, 6, m.Count())
}

func TestModel_ListSkipsRemovedDocuments(t *testing.T) {
	m, store := newModel(t)

	store.Remove(3)
	got := m.List()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 6, got[1].ID)
	assert.Equal(t, 4, m.Count())
}

func TestModel_ToggleExpandedTwiceCollapses(t *testing.T) {
	m, _ := newModel(t)

	assert.True(t, m.ToggleExpanded(1))
	assert.True(t, m.Expanded(1))
	assert.False(t, m.Expanded(3))

	assert.False(t, m.ToggleExpanded(1))
	for _, e := range m.List() {
		assert.False(t, m.Expanded(e.ID))
	}
	assert.False(t, m.AnyExpanded())
}

func TestModel_CollapseAllAndForget(t *testing.T) {
	m, _ := newModel(t)

	m.ToggleExpanded(1)
	m.ToggleExpanded(6)
	m.Forget(6)
	assert.True(t, m.Expanded(1))
	assert.False(t, m.Expanded(6))

	m.CollapseAll()
	assert.False(t, m.AnyExpanded())
}

func TestModel_EmptyFlagListsAreIgnored(t *testing.T) {
	store := catalog.NewStore(catalog.DefaultSeed().Documents)
	m := New(store, map[int][]catalog.Flag{2: nil, 4: {}})

	assert.Empty(t, m.List())
	assert.Equal(t, 0, m.Count())
}

func TestModel_ListReturnsCopies(t *testing.T) {
	m, _ := newModel(t)

	got := m.List()
	got[0].Flags[0].Reason = "changed"
	assert.NotEqual(t, "changed", m.List()[0].Flags[0].Reason)
}
