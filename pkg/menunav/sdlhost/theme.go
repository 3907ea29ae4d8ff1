package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
)

// Theme defines the visual appearance of the menus and the gameplay scene.
type Theme struct {
	ButtonNormal        sdl.Color // Button background at rest
	ButtonHovered       sdl.Color // Button background under the pointer or focus
	ButtonPressed       sdl.Color // Button background while pressed
	TextColor           sdl.Color // Button labels
	BackgroundColor     sdl.Color // Clear colour behind everything
	SpriteColor         sdl.Color // Gameplay sprite when no image is available
	FontPath            string    // Path to the label font
	FontSize            int
	BackgroundImagePath string // Menu background image, optional
	SpriteImagePath     string // Gameplay sprite image, optional
	SpriteSize          int32  // Size of the fallback sprite square
}

// DefaultTheme returns the stock theme using the given font.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		ButtonNormal:        rgb(0.15, 0.15, 0.15),
		ButtonHovered:       rgb(0.25, 0.25, 0.25),
		ButtonPressed:       rgb(0.35, 0.75, 0.35),
		TextColor:           rgb(0.9, 0.9, 0.9),
		BackgroundColor:     HexToColor(0x000000),
		SpriteColor:         HexToColor(0xB03A2E),
		FontPath:            fontPath,
		FontSize:            40,
		BackgroundImagePath: "images/main_menu/ancient_rome_trees.png",
		SpriteImagePath:     "images/main_menu/ancient_rome.png",
		SpriteSize:          64,
	}
}

// ButtonColor returns the background for a button in the given style.
func (t Theme) ButtonColor(s menunav.Style) sdl.Color {
	switch s {
	case menunav.StyleHovered:
		return t.ButtonHovered
	case menunav.StylePressed:
		return t.ButtonPressed
	default:
		return t.ButtonNormal
	}
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

func rgb(r, g, b float64) sdl.Color {
	return sdl.Color{R: unit(r), G: unit(g), B: unit(b), A: 0xFF}
}

func unit(v float64) uint8 {
	return uint8(v*255 + 0.5)
}
