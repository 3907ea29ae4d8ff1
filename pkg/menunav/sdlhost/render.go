package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

func toSDL(r internal.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (h *Host) fill(r internal.Rect, c sdl.Color) {
	renderer := h.window.Renderer
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRect(toSDL(r))
}

func (h *Host) render() {
	renderer := h.window.Renderer
	bg := h.theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	for _, handle := range h.order {
		n := h.nodes[handle]
		switch n.kind {
		case kindBackground:
			if h.background != nil {
				renderer.Copy(h.background, nil, toSDL(n.rect))
			}
		case kindButton:
			h.drawButton(n)
		case kindSprite:
			h.drawSprite()
		}
	}
}

func (h *Host) drawButton(n *node) {
	h.fill(n.rect, h.theme.ButtonColor(n.style))
	renderer := h.window.Renderer
	inner := n.rect.Inset(internal.UniformPadding(iconGap))

	if icon, ok := h.icons[n.icon]; ok {
		dst := internal.Rect{X: inner.X, Y: inner.Y + (inner.H-IconSize)/2, W: IconSize, H: IconSize}
		renderer.Copy(icon, nil, toSDL(dst))
	}

	label := h.labelTexture(n.label)
	if label == nil {
		return
	}
	if _, _, w, ht, err := label.Query(); err == nil {
		w, ht = min(w, inner.W), min(ht, inner.H)
		renderer.Copy(label, nil, toSDL(inner.Center(w, ht)))
	}
}

func (h *Host) labelTexture(text string) *sdl.Texture {
	if h.font == nil || text == "" {
		return nil
	}
	texture, err := h.labels.GetOrCreate(text, func() (*sdl.Texture, error) {
		surface, err := h.font.RenderUTF8Blended(text, h.theme.TextColor)
		if err != nil {
			return nil, err
		}
		defer surface.Free()
		return h.window.Renderer.CreateTextureFromSurface(surface)
	})
	if err != nil {
		h.logger.Error("Failed to render label", "label", text, "error", err)
		return nil
	}
	return texture
}

func (h *Host) drawSprite() {
	blue := h.scene.blue()
	dst := h.scene.rect()
	if h.sprite != nil {
		h.sprite.SetColorMod(255, 255, blue)
		h.window.Renderer.Copy(h.sprite, nil, toSDL(dst))
		return
	}
	c := h.theme.SpriteColor
	c.B = blue
	h.fill(dst, c)
}
