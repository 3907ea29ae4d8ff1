package router

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder registers hooks on every screen and records the calls in order,
// along with which screens currently hold live resources.
type recorder struct {
	calls []string
	live  map[Screen]bool
}

func newRecordedController(t *testing.T, start Screen, opts ...Option) (*Controller, *recorder) {
	t.Helper()
	opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	c := NewController(start, opts...)
	rec := &recorder{live: make(map[Screen]bool)}
	for _, s := range Screens() {
		s := s
		c.Register(s, Hooks{
			OnEnter: func(from Screen) {
				for other, live := range rec.live {
					if live {
						t.Fatalf("entering %s while %s is still live", s, other)
					}
				}
				rec.live[s] = true
				rec.calls = append(rec.calls, "enter:"+s.String())
			},
			OnExit: func(to Screen) {
				rec.live[s] = false
				rec.calls = append(rec.calls, "exit:"+s.String())
			},
			OnUpdate: func() {
				rec.calls = append(rec.calls, "update:"+s.String())
			},
		})
	}
	return c, rec
}

func (r *recorder) liveCount() int {
	n := 0
	for _, live := range r.live {
		if live {
			n++
		}
	}
	return n
}

func TestControllerEntersStartScreenOnFirstApply(t *testing.T) {
	c, rec := newRecordedController(t, ScreenMainMenu)
	assert.False(t, c.Started())
	assert.Empty(t, rec.calls)

	require.True(t, c.ApplyPendingTransition())
	assert.True(t, c.Started())
	assert.Equal(t, []string{"enter:main_menu"}, rec.calls)

	assert.False(t, c.ApplyPendingTransition(), "nothing pending")
	assert.Equal(t, ScreenMainMenu, c.Current())
}

func TestControllerRequestIsDeferredUntilApply(t *testing.T) {
	c, rec := newRecordedController(t, ScreenMainMenu)
	c.ApplyPendingTransition()

	c.RequestTransition(ScreenInGame)
	assert.Equal(t, ScreenMainMenu, c.Current(), "request must not change the active screen")
	target, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, ScreenInGame, target)

	require.True(t, c.ApplyPendingTransition())
	assert.Equal(t, ScreenInGame, c.Current())
	assert.Equal(t, []string{"enter:main_menu", "exit:main_menu", "enter:in_game"}, rec.calls)

	_, ok = c.Pending()
	assert.False(t, ok)
}

func TestControllerLastRequestWins(t *testing.T) {
	c, _ := newRecordedController(t, ScreenMainMenu)
	c.ApplyPendingTransition()

	c.RequestTransition(ScreenSettingsMenu)
	c.RequestTransition(ScreenInGame)
	c.ApplyPendingTransition()

	assert.Equal(t, ScreenInGame, c.Current())
}

func TestControllerRepeatedRequestIsIdempotent(t *testing.T) {
	once, onceRec := newRecordedController(t, ScreenMainMenu)
	twice, twiceRec := newRecordedController(t, ScreenMainMenu)
	once.ApplyPendingTransition()
	twice.ApplyPendingTransition()

	once.RequestTransition(ScreenSettingsMenu)
	twice.RequestTransition(ScreenSettingsMenu)
	twice.RequestTransition(ScreenSettingsMenu)

	once.ApplyPendingTransition()
	twice.ApplyPendingTransition()

	assert.Equal(t, onceRec.calls, twiceRec.calls)
	assert.Equal(t, once.Current(), twice.Current())
	assert.Equal(t, once.History().Entries(), twice.History().Entries())
}

func TestControllerExitCompletesBeforeEnter(t *testing.T) {
	c, rec := newRecordedController(t, ScreenMainMenu)
	c.ApplyPendingTransition()

	sequence := []Screen{
		ScreenSettingsMenu, ScreenMainMenu, ScreenInGame, ScreenPauseMenu,
		ScreenSettingsMenu, ScreenPauseMenu, ScreenInGame, ScreenMainMenu,
	}
	for _, s := range sequence {
		rec.calls = nil
		c.RequestTransition(s)
		require.True(t, c.ApplyPendingTransition())
		require.Len(t, rec.calls, 2)
		assert.Regexp(t, "^exit:", rec.calls[0])
		assert.Equal(t, "enter:"+s.String(), rec.calls[1])
		assert.Equal(t, 1, rec.liveCount(), "exactly one screen live between transitions")
	}
}

func TestControllerTransitionToActiveScreenReentersIt(t *testing.T) {
	c, rec := newRecordedController(t, ScreenPauseMenu)
	c.ApplyPendingTransition()
	rec.calls = nil

	c.RequestTransition(ScreenPauseMenu)
	assert.True(t, c.ApplyPendingTransition())
	assert.Equal(t, []string{"exit:pause_menu", "enter:pause_menu"}, rec.calls)
	assert.Equal(t, 1, rec.liveCount())
	assert.Equal(t, ScreenPauseMenu, c.Current())
	assert.Equal(t, []Screen{ScreenPauseMenu}, c.History().Entries())
}

func TestControllerClearsHistoryOnGameplay(t *testing.T) {
	for depth := 0; depth < 8; depth++ {
		t.Run(fmt.Sprintf("depth=%d", depth), func(t *testing.T) {
			c, _ := newRecordedController(t, ScreenMainMenu)
			c.ApplyPendingTransition()
			for i := 0; i < depth; i++ {
				if c.Current() == ScreenSettingsMenu {
					c.RequestTransition(ScreenMainMenu)
				} else {
					c.RequestTransition(ScreenSettingsMenu)
				}
				c.ApplyPendingTransition()
			}

			c.RequestTransition(ScreenInGame)
			c.ApplyPendingTransition()

			assert.Equal(t, ScreenInGame, c.Current())
			assert.True(t, c.History().IsEmpty())
		})
	}
}

func TestControllerBackFromSettingsReachedViaPause(t *testing.T) {
	c, _ := newRecordedController(t, ScreenInGame)
	c.ApplyPendingTransition()

	c.RequestTransition(ScreenPauseMenu)
	c.ApplyPendingTransition()
	c.RequestTransition(ScreenSettingsMenu)
	c.ApplyPendingTransition()
	assert.Equal(t, []Screen{ScreenPauseMenu, ScreenInGame}, c.History().Entries())

	target, err := c.RequestBack(ScreenMainMenu)
	require.NoError(t, err)
	assert.Equal(t, ScreenPauseMenu, target)

	c.ApplyPendingTransition()
	assert.Equal(t, ScreenPauseMenu, c.Current())
	assert.Equal(t, []Screen{ScreenSettingsMenu, ScreenInGame}, c.History().Entries(),
		"back pops the pause menu and pushes the screen it left")
}

func TestControllerBackPushesScreenBeingLeft(t *testing.T) {
	c, rec := newRecordedController(t, ScreenPauseMenu)
	c.ApplyPendingTransition()

	c.RequestTransition(ScreenSettingsMenu)
	c.ApplyPendingTransition()
	require.Equal(t, []Screen{ScreenPauseMenu}, c.History().Entries())

	rec.calls = nil
	_, err := c.RequestBack(ScreenMainMenu)
	require.NoError(t, err)
	require.True(t, c.ApplyPendingTransition())

	assert.Equal(t, ScreenPauseMenu, c.Current())
	assert.Equal(t, []Screen{ScreenSettingsMenu}, c.History().Entries())
	assert.Equal(t, []string{"exit:settings_menu", "enter:pause_menu"}, rec.calls)
}

func TestControllerBackWithEmptyHistoryUsesFallback(t *testing.T) {
	c, rec := newRecordedController(t, ScreenSettingsMenu)
	c.ApplyPendingTransition()

	target, err := c.RequestBack(ScreenMainMenu)
	require.ErrorIs(t, err, ErrEmptyHistory)
	assert.Equal(t, ScreenMainMenu, target)

	c.ApplyPendingTransition()
	assert.Equal(t, ScreenMainMenu, c.Current())
	assert.Equal(t, "enter:main_menu", rec.calls[len(rec.calls)-1])
	assert.Equal(t, []Screen{ScreenSettingsMenu}, c.History().Entries())
}

func TestControllerRepeatedBackPopsOnce(t *testing.T) {
	c, _ := newRecordedController(t, ScreenMainMenu)
	c.ApplyPendingTransition()
	c.RequestTransition(ScreenPauseMenu)
	c.ApplyPendingTransition()
	c.RequestTransition(ScreenSettingsMenu)
	c.ApplyPendingTransition()

	first, err := c.RequestBack(ScreenMainMenu)
	require.NoError(t, err)
	second, err := c.RequestBack(ScreenMainMenu)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.History().Len())
}

func TestControllerUpdateRunsOnlyActiveScreen(t *testing.T) {
	c, rec := newRecordedController(t, ScreenMainMenu)
	c.ApplyPendingTransition()
	rec.calls = nil

	c.Update()
	c.RequestTransition(ScreenInGame)
	c.Update()
	c.ApplyPendingTransition()
	c.Update()

	assert.Equal(t, []string{
		"update:main_menu",
		"update:main_menu",
		"exit:main_menu",
		"enter:in_game",
		"update:in_game",
	}, rec.calls)
}

func TestControllerHooksRunInRegistrationOrder(t *testing.T) {
	c := NewController(ScreenMainMenu, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	var order []int
	c.Register(ScreenMainMenu, Hooks{OnEnter: func(Screen) { order = append(order, 1) }}).
		Register(ScreenMainMenu, Hooks{OnEnter: func(Screen) { order = append(order, 2) }})

	c.ApplyPendingTransition()
	assert.Equal(t, []int{1, 2}, order)
}

func TestControllerCustomCapacityAndGameplayScreen(t *testing.T) {
	c, _ := newRecordedController(t, ScreenMainMenu,
		WithHistoryCapacity(2),
		WithGameplayScreen(ScreenPauseMenu),
	)
	c.ApplyPendingTransition()

	for _, s := range []Screen{ScreenSettingsMenu, ScreenInGame, ScreenSettingsMenu} {
		c.RequestTransition(s)
		c.ApplyPendingTransition()
	}
	assert.Equal(t, []Screen{ScreenInGame, ScreenSettingsMenu}, c.History().Entries())

	c.RequestTransition(ScreenPauseMenu)
	c.ApplyPendingTransition()
	assert.True(t, c.History().IsEmpty())
}

func TestScreenText(t *testing.T) {
	for _, s := range Screens() {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var parsed Screen
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, s, parsed)
	}

	_, err := ParseScreen("credits")
	assert.Error(t, err)
	assert.False(t, Screen(42).Valid())
	assert.Equal(t, "screen(42)", Screen(42).String())
}
