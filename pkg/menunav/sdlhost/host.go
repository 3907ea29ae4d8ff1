// Package sdlhost renders menunav screens with SDL2 and feeds keyboard,
// mouse and game controller input back into the engine.
package sdlhost

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
	"github.com/BrandonKowalski/menunav/pkg/menunav/registry"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

const iconGap int32 = 12

type nodeKind int

const (
	kindBackground nodeKind = iota
	kindButton
	kindSprite
)

type node struct {
	kind  nodeKind
	rect  internal.Rect
	label string
	icon  string
	style menunav.Style
}

// Host owns the window and implements menunav.UI and menunav.Audio.
type Host struct {
	cfg    menunav.Config
	theme  Theme
	window *Window
	size   func() (int32, int32)
	logger *slog.Logger

	font       *ttf.Font
	labels     *TextureCache
	icons      map[string]*sdl.Texture
	background *sdl.Texture
	sprite     *sdl.Texture
	mixer      *Mixer

	controllers []*sdl.GameController
	hw          <-chan constants.VirtualButton

	nodes   map[menunav.Handle]*node
	order   []menunav.Handle // draw order
	next    menunav.Handle
	pointer *pointer
	dirs    *internal.DirectionalInput
	scene   *scene
}

// New initializes SDL and opens the window. Missing fonts, images and audio
// are logged and degrade the presentation; only SDL and window failures are
// errors.
func New(cfg menunav.Config, theme Theme) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("init ttf: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetLogger().Warn("Image support unavailable", "error", err)
	}

	window, err := openWindow(cfg.Window)
	if err != nil {
		img.Quit()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	h := newHost(cfg, theme, window.Size)
	h.window = window
	h.loadAssets()
	h.openControllers()

	if mixer, err := OpenMixer(cfg); err != nil {
		h.logger.Warn("Audio unavailable, cues will be skipped", "error", err)
	} else {
		h.mixer = mixer
	}

	return h, nil
}

func newHost(cfg menunav.Config, theme Theme, size func() (int32, int32)) *Host {
	dirs := internal.NewDirectionalInput()
	return &Host{
		cfg:     cfg,
		theme:   theme,
		size:    size,
		logger:  internal.GetLogger(),
		labels:  NewTextureCache(),
		icons:   make(map[string]*sdl.Texture),
		nodes:   make(map[menunav.Handle]*node),
		pointer: newPointer(),
		dirs:    dirs,
		scene:   &scene{dirs: dirs},
	}
}

func (h *Host) loadAssets() {
	r := h.window.Renderer

	if font, err := ttf.OpenFont(h.theme.FontPath, h.theme.FontSize); err != nil {
		h.logger.Warn("Failed to load font, labels will not be drawn", "path", h.theme.FontPath, "error", err)
	} else {
		h.font = font
	}

	for name := range iconFiles {
		texture, err := loadIcon(r, name)
		if err != nil {
			h.logger.Warn("Failed to load icon", "icon", name, "error", err)
			continue
		}
		h.icons[name] = texture
	}

	if h.theme.BackgroundImagePath != "" {
		if texture, err := img.LoadTexture(r, h.theme.BackgroundImagePath); err == nil {
			h.background = texture
		} else {
			h.logger.Debug("No menu background image", "path", h.theme.BackgroundImagePath, "error", err)
		}
	}
	if h.theme.SpriteImagePath != "" {
		if texture, err := img.LoadTexture(r, h.theme.SpriteImagePath); err == nil {
			h.sprite = texture
		} else {
			h.logger.Debug("No sprite image, drawing a square", "path", h.theme.SpriteImagePath, "error", err)
		}
	}
}

// Audio returns the host as an audio collaborator, or nil when no audio
// device could be opened.
func (h *Host) Audio() menunav.Audio {
	if h.mixer == nil {
		return nil
	}
	return h
}

// Play implements menunav.Audio.
func (h *Host) Play(cue menunav.Cue) {
	if h.mixer != nil {
		h.mixer.Play(cue)
	}
}

// SpawnScreenUI implements menunav.UI. Menus get a background and a column of
// buttons; the gameplay screen gets the sprite.
func (h *Host) SpawnScreenUI(screen router.Screen, def registry.MenuDefinition) menunav.ScreenUI {
	w, ht := h.size()
	h.pointer.reset()

	if screen == h.cfg.GameplayScreen {
		sw, sh := h.spriteSize()
		h.scene.reset(sw, sh, w, ht)
		return menunav.ScreenUI{Extra: []menunav.Handle{h.add(&node{kind: kindSprite})}}
	}

	ui := menunav.ScreenUI{
		Extra: []menunav.Handle{h.add(&node{kind: kindBackground, rect: internal.Rect{W: w, H: ht}})},
	}
	rects := internal.ButtonColumn(len(def.Entries), w, ht)
	for i, entry := range def.Entries {
		handle := h.add(&node{
			kind:  kindButton,
			rect:  rects[i],
			label: entry.Label,
			icon:  entry.Icon,
			style: menunav.StyleNormal,
		})
		ui.Elements = append(ui.Elements, menunav.Element{Handle: handle, Label: entry.Label})
	}
	return ui
}

// Despawn implements menunav.UI.
func (h *Host) Despawn(handle menunav.Handle) {
	if _, ok := h.nodes[handle]; !ok {
		return
	}
	delete(h.nodes, handle)
	h.order = slices.DeleteFunc(h.order, func(o menunav.Handle) bool { return o == handle })
}

// SetStyle implements menunav.UI. An element returned to normal is forgotten
// by the pointer so that the cursor resting on it hovers it again on the next
// mouse event.
func (h *Host) SetStyle(handle menunav.Handle, s menunav.Style) {
	n, ok := h.nodes[handle]
	if !ok {
		return
	}
	n.style = s
	if s == menunav.StyleNormal {
		h.pointer.forget(handle)
	}
}

// Close releases every SDL resource.
func (h *Host) Close() {
	h.labels.Destroy()
	for _, texture := range h.icons {
		texture.Destroy()
	}
	if h.background != nil {
		h.background.Destroy()
	}
	if h.sprite != nil {
		h.sprite.Destroy()
	}
	if h.font != nil {
		h.font.Close()
	}
	if h.mixer != nil {
		h.mixer.Close()
	}
	for _, c := range h.controllers {
		c.Close()
	}
	h.window.close()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

func (h *Host) add(n *node) menunav.Handle {
	h.next++
	h.nodes[h.next] = n
	h.order = append(h.order, h.next)
	return h.next
}

func (h *Host) targets() []target {
	var out []target
	for _, handle := range h.order {
		if n := h.nodes[handle]; n.kind == kindButton {
			out = append(out, target{handle: handle, rect: n.rect})
		}
	}
	return out
}

func (h *Host) spriteSize() (int32, int32) {
	if h.sprite != nil {
		if _, _, w, ht, err := h.sprite.Query(); err == nil {
			return w, ht
		}
	}
	return h.theme.SpriteSize, h.theme.SpriteSize
}
