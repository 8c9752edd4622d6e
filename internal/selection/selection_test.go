package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_ToggleTwiceRestores(t *testing.T) {
	var s Set

	s.Toggle(3)
	assert.True(t, s.Contains(3))
	assert.Equal(t, 1, s.Len())

	s.Toggle(3)
	assert.False(t, s.Contains(3))
	assert.Equal(t, 0, s.Len())
}

func TestSet_ToggleAllSelectsVisible(t *testing.T) {
	var s Set
	s.Toggle(9)

	s.ToggleAll([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, s.IDs())
}

func TestSet_ToggleAllClearsWhenEqual(t *testing.T) {
	var s Set

	s.ToggleAll([]int{3, 1, 2})
	s.ToggleAll([]int{1, 2, 3})
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
}

func TestSet_ToggleAllPartialSelection(t *testing.T) {
	var s Set
	s.Toggle(2)

	s.ToggleAll([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, s.IDs())
}

func TestSet_ToggleAllEmptyVisible(t *testing.T) {
	var s Set
	s.Toggle(4)

	s.ToggleAll(nil)
	assert.Equal(t, 0, s.Len())
}

func TestSet_ToggleHiddenIDIsAdded(t *testing.T) {
	var s Set
	s.ToggleAll([]int{1, 2})

	// 5 is not part of the visible list; it is still a normal add.
	s.Toggle(5)
	assert.Equal(t, []int{1, 2, 5}, s.IDs())
}

func TestSet_PruneAndRetain(t *testing.T) {
	var s Set
	s.ToggleAll([]int{2, 3, 4})

	s.Prune(2, 4, 99)
	assert.Equal(t, []int{3}, s.IDs())

	s.ToggleAll([]int{1, 3, 5})
	s.Retain([]int{5, 6})
	assert.Equal(t, []int{5}, s.IDs())
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set

	assert.False(t, s.Contains(1))
	assert.Empty(t, s.IDs())
	s.Prune(1)
	s.Retain(nil)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestToggles(t *testing.T) {
	var tg Toggles[int]

	assert.False(t, tg.On(1))
	assert.False(t, tg.Any())

	assert.True(t, tg.Toggle(1))
	assert.True(t, tg.On(1))
	assert.True(t, tg.Any())

	assert.False(t, tg.Toggle(1))
	assert.False(t, tg.On(1))
	assert.False(t, tg.Any())

	tg.Set(2, true)
	tg.Set(3, true)
	tg.Set(3, false)
	assert.True(t, tg.On(2))
	assert.False(t, tg.On(3))

	tg.Reset()
	assert.False(t, tg.Any())
}

func TestToggles_StringKeys(t *testing.T) {
	var tg Toggles[string]

	tg.Toggle("archive")
	assert.True(t, tg.On("archive"))
	assert.False(t, tg.On("document"))
}
