package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryPushPop(t *testing.T) {
	h := NewHistory(5)
	require.True(t, h.IsEmpty())

	h.Push(ScreenMainMenu)
	h.Push(ScreenPauseMenu)

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, ScreenPauseMenu, top)
	assert.Equal(t, 2, h.Len())

	s, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, ScreenPauseMenu, s)

	s, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, ScreenMainMenu, s)

	_, ok = h.Pop()
	assert.False(t, ok, "pop on empty history must report no screen")
	_, ok = h.Peek()
	assert.False(t, ok)
}

func TestHistoryDropsOldestAtCapacity(t *testing.T) {
	h := NewHistory(5)
	pushed := []Screen{
		ScreenInGame,
		ScreenMainMenu,
		ScreenPauseMenu,
		ScreenSettingsMenu,
		ScreenMainMenu,
		ScreenPauseMenu,
	}
	for _, s := range pushed {
		h.Push(s)
	}

	require.Equal(t, 5, h.Len())
	assert.Equal(t, []Screen{
		ScreenPauseMenu,
		ScreenMainMenu,
		ScreenSettingsMenu,
		ScreenPauseMenu,
		ScreenMainMenu,
	}, h.Entries())

	var popped []Screen
	for {
		s, ok := h.Pop()
		if !ok {
			break
		}
		popped = append(popped, s)
	}
	assert.NotContains(t, popped, ScreenInGame, "oldest entry should have been discarded")
	assert.Len(t, popped, 5)
}

func TestHistoryBoundHoldsForLongSequences(t *testing.T) {
	h := NewHistory(3)
	screens := Screens()
	for i := 0; i < 50; i++ {
		h.Push(screens[i%len(screens)])
		assert.LessOrEqual(t, h.Len(), h.Cap())
	}
	// Last three pushes were i=47,48,49 -> screens[3], screens[0], screens[1].
	assert.Equal(t, []Screen{screens[1], screens[0], screens[3]}, h.Entries())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistoryCapacity, h.Cap())

	h.Push(ScreenMainMenu)
	h.Push(ScreenSettingsMenu)
	h.Clear()

	assert.True(t, h.IsEmpty())
	assert.Empty(t, h.Entries())

	h.Push(ScreenPauseMenu)
	s, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, ScreenPauseMenu, s)
}
