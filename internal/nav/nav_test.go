package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/catalog"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	return New(catalog.NewStore(catalog.DefaultSeed().Documents))
}

func TestController_StartsAtHomeListing(t *testing.T) {
	c := newController(t)

	assert.Equal(t, State{Page: Home}, c.State())
	_, ok := c.Detail()
	assert.False(t, ok)
}

func TestController_OpenAndBack(t *testing.T) {
	c := newController(t)

	require.NoError(t, c.OpenDocument(3))
	id, ok := c.Detail()
	require.True(t, ok)
	assert.Equal(t, 3, id)

	assert.True(t, c.Back())
	assert.Equal(t, State{Page: Home}, c.State())
	assert.False(t, c.Back())
}

func TestController_OpenUnknownLeavesStateUnchanged(t *testing.T) {
	c := newController(t)
	before := c.State()

	err := c.OpenDocument(999)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, before, c.State())
}

func TestController_OpenOnlyFromListing(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.OpenDocument(1))

	err := c.OpenDocument(2)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	id, _ := c.Detail()
	assert.Equal(t, 1, id)

	c.NavigateTo(History)
	c.Back()
	assert.Equal(t, History, c.Page())
	assert.ErrorIs(t, c.OpenDocument(2), ErrInvalidTransition)
}

func TestController_NavigateKeepsSelection(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.OpenDocument(4))

	c.NavigateTo(Manager)
	_, ok := c.Detail()
	assert.False(t, ok)
	assert.True(t, c.State().HasSelected)

	c.NavigateTo(Home)
	id, ok := c.Detail()
	require.True(t, ok)
	assert.Equal(t, 4, id)
}

func TestController_OpenFromFlagged(t *testing.T) {
	c := newController(t)
	c.NavigateTo(Flagged)

	require.NoError(t, c.OpenFromFlagged(6))
	assert.Equal(t, State{Page: Home, Selected: 6, HasSelected: true}, c.State())

	// Works from Home/detail as well.
	require.NoError(t, c.OpenFromFlagged(1))
	id, _ := c.Detail()
	assert.Equal(t, 1, id)
}

func TestController_OpenFromFlaggedUnknown(t *testing.T) {
	c := newController(t)
	c.NavigateTo(Flagged)

	assert.ErrorIs(t, c.OpenFromFlagged(42), catalog.ErrNotFound)
	assert.Equal(t, State{Page: Flagged}, c.State())
}

func TestController_Forget(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.OpenDocument(2))

	c.Forget(5)
	assert.True(t, c.State().HasSelected)

	c.Forget(4, 2)
	assert.Equal(t, State{Page: Home}, c.State())
}

func TestPageString(t *testing.T) {
	assert.Equal(t, "Manager", Manager.String())
	assert.Equal(t, "Page(9)", Page(9).String())
	assert.Len(t, Pages, 4)
}
