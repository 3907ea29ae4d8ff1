package sdlhost

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
)

//go:embed icons/*.svg
var iconFS embed.FS

// IconSize is the edge length icons are rasterized at.
const IconSize = 32

var iconFiles = map[string]string{
	constants.IconBack: "icons/back.svg",
	constants.IconExit: "icons/exit.svg",
}

// rasterizeIcon renders an SVG document into a size x size RGBA image.
func rasterizeIcon(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

func loadIcon(renderer *sdl.Renderer, name string) (*sdl.Texture, error) {
	file, ok := iconFiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	data, err := iconFS.ReadFile(file)
	if err != nil {
		return nil, err
	}
	img, err := rasterizeIcon(data, IconSize)
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", name, err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, IconSize, IconSize)
	if err != nil {
		return nil, err
	}
	if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		texture.Destroy()
		return nil, err
	}
	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		texture.Destroy()
		return nil, err
	}
	return texture, nil
}
