package window

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	textureDir  = "assets/textures"
	textureSize = 64
	checkerSize = 16
)

// Assets holds the GPU-side resources shared by all draw calls: a plain
// white image for flat quads, a texture cache keyed by the names games put
// in their draw lists, and the label font.
type Assets struct {
	White    *ebiten.Image
	Font     *text.GoTextFaceSource
	textures map[string]*ebiten.Image
}

// LoadAssets prepares the shared resources. Missing texture files and fonts
// degrade to procedural fallbacks rather than failing, so the game is
// playable from a bare checkout.
func LoadAssets() *Assets {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Assets{
		White:    white,
		Font:     loadFont(),
		textures: make(map[string]*ebiten.Image),
	}
}

// Texture resolves a texture key to an image, loading it on first use.
// When no PNG exists for the key a procedural checkerboard is generated,
// mirroring how the textures look in development builds without art assets.
func (a *Assets) Texture(key string) *ebiten.Image {
	if img, ok := a.textures[key]; ok {
		return img
	}

	img, err := loadPNG(filepath.Join(textureDir, key+".png"))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("could not load texture, using checkerboard", "key", key, "err", err)
		}
		img = checkerboard()
	}

	a.textures[key] = img
	return img
}

func loadPNG(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return ebiten.NewImageFromImage(decoded), nil
}

// checkerboard generates the two-tone fallback texture. It is drawn in
// grayscale so the per-quad tint still reads through.
func checkerboard() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, textureSize, textureSize))

	light := color.RGBA{R: 220, G: 220, B: 220, A: 255}
	dark := color.RGBA{R: 140, G: 140, B: 140, A: 255}

	for y := 0; y < textureSize; y++ {
		for x := 0; x < textureSize; x++ {
			if (x/checkerSize+y/checkerSize)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}
