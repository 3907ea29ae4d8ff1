package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

var keyButtons = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_KP_ENTER:  constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_ESCAPE:    constants.VirtualButtonMenu,
}

var controllerButtons = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
}

func (h *Host) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		h.openController(i)
	}
}

func (h *Host) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	c := sdl.GameControllerOpen(index)
	if c == nil {
		h.logger.Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	h.logger.Debug("Opened game controller", "index", index, "name", c.Name())
	h.controllers = append(h.controllers, c)
}

// pollEvents drains the SDL event queue into the engine. It returns false
// when the window was closed.
func (h *Host) pollEvents(eng *menunav.Engine) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if button, ok := keyButtons[e.Keysym.Sym]; ok {
				h.button(eng, button, e.Type == sdl.KEYDOWN, e.Repeat != 0)
			}
		case *sdl.ControllerButtonEvent:
			if button, ok := controllerButtons[sdl.GameControllerButton(e.Button)]; ok {
				h.button(eng, button, e.Type == sdl.CONTROLLERBUTTONDOWN, false)
			}
		case *sdl.ControllerDeviceEvent:
			if e.Type == sdl.CONTROLLERDEVICEADDED {
				h.openController(int(e.Which))
			}
		case *sdl.MouseMotionEvent:
			h.pointer.move(e.X, e.Y)
		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				h.pointer.press(e.X, e.Y, h.targets())
			} else {
				h.pointer.release(e.X, e.Y)
			}
			h.reportPointer(eng)
		}
	}
	return true
}

// button records held directions for repeat and movement and forwards new
// presses to the engine.
func (h *Host) button(eng *menunav.Engine, button constants.VirtualButton, pressed, repeat bool) {
	h.dirs.SetHeld(button, pressed)
	if pressed && !repeat {
		eng.NotifyButton(button)
	}
}

// drainButtons forwards presses from a hardware input watcher.
func (h *Host) drainButtons(eng *menunav.Engine) {
	for {
		select {
		case button, ok := <-h.hw:
			if !ok {
				h.hw = nil
				return
			}
			eng.NotifyButton(button)
		default:
			return
		}
	}
}

// repeatFocus moves the menu focus while a direction is held.
func (h *Host) repeatFocus(eng *menunav.Engine) {
	dir := h.dirs.Update()
	if dir == internal.DirectionNone || len(eng.Elements()) == 0 {
		return
	}
	eng.NotifyButton(dir.VirtualButton())
}

func (h *Host) reportPointer(eng *menunav.Engine) {
	for _, edge := range h.pointer.edges(h.targets()) {
		eng.NotifyInteraction(menunav.Element{Handle: edge.handle, Label: h.nodes[edge.handle].label}, edge.state)
	}
}
