package sdlhost

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	hasVSync        bool
	lastPresentTime uint64
}

// windowFlags maps the window config to SDL window flags. Development mode
// always gets a resizable window.
func windowFlags(cfg menunav.WindowConfig) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen && !constants.IsDevMode() {
		return flags | sdl.WINDOW_FULLSCREEN_DESKTOP | sdl.WINDOW_BORDERLESS
	}
	return flags | sdl.WINDOW_RESIZABLE
}

// windowSize returns the configured size, overridden by WINDOW_WIDTH and
// WINDOW_HEIGHT in development mode.
func windowSize(cfg menunav.WindowConfig) (int32, int32) {
	width, height := cfg.Width, cfg.Height
	if !constants.IsDevMode() {
		return width, height
	}

	parse := func(name string, fallback int32) int32 {
		v := os.Getenv(name)
		if v == "" {
			return fallback
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			internal.GetInternalLogger().Warn("Invalid window size override; using config", "variable", name, "value", v, "error", err)
			return fallback
		}
		return int32(n)
	}
	return parse(constants.WindowWidthEnvVar, width), parse(constants.WindowHeightEnvVar, height)
}

func openWindow(cfg menunav.WindowConfig) (*Window, error) {
	width, height := windowSize(cfg)
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		x, y = 50, 50
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(cfg.Title, x, y, width, height, windowFlags(cfg))
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if err := renderer.SetLogicalSize(width, height); err != nil {
		internal.GetInternalLogger().Warn("Failed to set logical size", "error", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		internal.GetInternalLogger().Warn("Failed to enable blending", "error", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    cfg.Title,
		hasVSync: vsync,
	}, nil
}

// Size returns the logical size of the drawing area.
func (w *Window) Size() (int32, int32) {
	lw, lh := w.Renderer.GetLogicalSize()
	if lw > 0 && lh > 0 {
		return lw, lh
	}
	return w.Window.GetSize()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		interval := uint64(constants.FrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < interval {
			sdl.Delay(uint32(interval - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
