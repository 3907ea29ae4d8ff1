package dispatch

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/registry"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

type styleCall struct {
	h Handle
	s Style
}

type fakeStyler struct{ calls []styleCall }

func (f *fakeStyler) SetStyle(h Handle, s Style) { f.calls = append(f.calls, styleCall{h, s}) }

type fakePlayer struct{ cues []Cue }

func (f *fakePlayer) Play(cue Cue) { f.cues = append(f.cues, cue) }

type fixture struct {
	ctrl   *router.Controller
	d      *Dispatcher
	styler *fakeStyler
	player *fakePlayer
	logs   *bytes.Buffer
	exits  int
}

func newFixture(t *testing.T, start router.Screen) *fixture {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)

	f := &fixture{
		ctrl:   router.NewController(start, router.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))),
		styler: &fakeStyler{},
		player: &fakePlayer{},
		logs:   &bytes.Buffer{},
	}
	f.ctrl.ApplyPendingTransition()
	f.d = New(f.ctrl, reg, f.styler, f.player, Options{
		Fallback: router.ScreenMainMenu,
		ClickCue: "click",
		OnExit:   func() { f.exits++ },
		Logger:   slog.New(slog.NewJSONHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	return f
}

func TestInteractHoverPressIdleStyles(t *testing.T) {
	f := newFixture(t, router.ScreenMainMenu)
	el := Element{Handle: 1, Label: "Settings"}

	f.d.Interact(router.ScreenMainMenu, el, InteractionHovered)
	f.d.Interact(router.ScreenMainMenu, el, InteractionPressed)
	f.d.Interact(router.ScreenMainMenu, el, InteractionNone)

	assert.Equal(t, []styleCall{{1, StyleHovered}, {1, StylePressed}, {1, StyleNormal}}, f.styler.calls)
	assert.Equal(t, []Cue{"click"}, f.player.cues)
	assert.Equal(t, InteractionNone, f.d.State(1))
}

func TestInteractOnlyReactsToEdges(t *testing.T) {
	f := newFixture(t, router.ScreenMainMenu)
	el := Element{Handle: 7, Label: "Settings"}

	// An element that was never touched reporting idle is not an edge.
	f.d.Interact(router.ScreenMainMenu, el, InteractionNone)
	assert.Empty(t, f.styler.calls)

	for i := 0; i < 3; i++ {
		f.d.Interact(router.ScreenMainMenu, el, InteractionHovered)
	}
	assert.Len(t, f.styler.calls, 1)

	for i := 0; i < 3; i++ {
		f.d.Interact(router.ScreenMainMenu, el, InteractionPressed)
	}
	assert.Len(t, f.player.cues, 1, "holding the press must not replay the cue")

	f.d.Reset()
	f.d.Interact(router.ScreenMainMenu, el, InteractionPressed)
	assert.Len(t, f.player.cues, 2, "reset makes the next press an edge again")
}

func TestPressResumeRequestsGameplay(t *testing.T) {
	f := newFixture(t, router.ScreenMainMenu)

	action := f.d.Interact(router.ScreenMainMenu, Element{Handle: 1, Label: "Resume Game"}, InteractionPressed)
	assert.Equal(t, registry.ActionResumeGame, action)

	assert.Equal(t, router.ScreenMainMenu, f.ctrl.Current(), "dispatch never switches screens itself")
	target, ok := f.ctrl.Pending()
	require.True(t, ok)
	assert.Equal(t, router.ScreenInGame, target)
}

func TestPressExitSignalsHost(t *testing.T) {
	f := newFixture(t, router.ScreenPauseMenu)

	action := f.d.Interact(router.ScreenPauseMenu, Element{Handle: 4, Label: "Exit Game"}, InteractionPressed)
	assert.Equal(t, registry.ActionExitGame, action)
	assert.Equal(t, 1, f.exits)

	_, pending := f.ctrl.Pending()
	assert.False(t, pending)
}

func TestPressUnresolvedLabelIsLoggedNoop(t *testing.T) {
	f := newFixture(t, router.ScreenMainMenu)

	action := f.d.Interact(router.ScreenMainMenu, Element{Handle: 9, Label: "Credits"}, InteractionPressed)
	assert.Equal(t, registry.ActionNoop, action)

	_, pending := f.ctrl.Pending()
	assert.False(t, pending)
	assert.Equal(t, []Cue{"click"}, f.player.cues, "feedback still plays")
	assert.Contains(t, f.logs.String(), `"event":"unresolved_action"`)
}

func TestPressNoopEntry(t *testing.T) {
	f := newFixture(t, router.ScreenMainMenu)

	action := f.d.Interact(router.ScreenMainMenu, Element{Handle: 3, Label: "Mama mia!"}, InteractionPressed)
	assert.Equal(t, registry.ActionNoop, action)
	_, pending := f.ctrl.Pending()
	assert.False(t, pending)
	assert.Contains(t, f.logs.String(), "No-op action")
}

func TestGoBackWithEmptyHistoryFallsBack(t *testing.T) {
	f := newFixture(t, router.ScreenSettingsMenu)

	action := f.d.Interact(router.ScreenSettingsMenu, Element{Handle: 1, Label: "Back"}, InteractionPressed)
	assert.Equal(t, registry.ActionGoBack, action)

	target, ok := f.ctrl.Pending()
	require.True(t, ok)
	assert.Equal(t, router.ScreenMainMenu, target)
	assert.Contains(t, f.logs.String(), `"event":"empty_history"`)
	assert.Contains(t, f.logs.String(), `"level":"WARN"`)
}

func TestGoBackPopsHistory(t *testing.T) {
	f := newFixture(t, router.ScreenInGame)
	f.ctrl.RequestTransition(router.ScreenPauseMenu)
	f.ctrl.ApplyPendingTransition()
	f.ctrl.RequestTransition(router.ScreenSettingsMenu)
	f.ctrl.ApplyPendingTransition()

	f.d.Interact(router.ScreenSettingsMenu, Element{Handle: 1, Label: "Back"}, InteractionPressed)
	f.ctrl.ApplyPendingTransition()

	assert.Equal(t, router.ScreenPauseMenu, f.ctrl.Current())
	assert.NotContains(t, f.logs.String(), "empty_history")
}

func TestHandleButton(t *testing.T) {
	tests := []struct {
		name     string
		screen   router.Screen
		button   constants.VirtualButton
		consumed bool
		target   router.Screen
	}{
		{"menu pauses gameplay", router.ScreenInGame, constants.VirtualButtonMenu, true, router.ScreenPauseMenu},
		{"start pauses gameplay", router.ScreenInGame, constants.VirtualButtonStart, true, router.ScreenPauseMenu},
		{"menu resumes from pause", router.ScreenPauseMenu, constants.VirtualButtonMenu, true, router.ScreenInGame},
		{"back from settings", router.ScreenSettingsMenu, constants.VirtualButtonB, true, router.ScreenMainMenu},
		{"directional in gameplay", router.ScreenInGame, constants.VirtualButtonLeft, false, 0},
		{"a on main menu", router.ScreenMainMenu, constants.VirtualButtonA, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.screen)
			assert.Equal(t, tt.consumed, f.d.HandleButton(tt.screen, tt.button))

			target, pending := f.ctrl.Pending()
			assert.Equal(t, tt.consumed, pending)
			if tt.consumed {
				assert.Equal(t, tt.target, target)
			}
		})
	}
}
