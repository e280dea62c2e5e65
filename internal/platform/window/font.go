package window

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const fontDir = "assets/fonts"

// loadFont resolves the label font. A TTF dropped into assets/fonts takes
// precedence; otherwise the embedded Go Regular face is used. Returns nil
// only if even the embedded font fails to parse, in which case labels are
// skipped.
func loadFont() *text.GoTextFaceSource {
	if src := loadFontDir(); src != nil {
		return src
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Error("could not parse embedded font, text disabled", "err", err)
		return nil
	}
	return src
}

func loadFontDir() *text.GoTextFaceSource {
	entries, err := os.ReadDir(fontDir)
	if err != nil {
		return nil
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".ttf" {
			continue
		}

		path := filepath.Join(fontDir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("could not read font", "path", path, "err", err)
			continue
		}

		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			log.Warn("could not parse font", "path", path, "err", err)
			continue
		}
		return src
	}

	return nil
}
