package game

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace loads the TrueType font at path. When the file is missing or
// unreadable it falls back to the embedded Go Regular face.
func LoadFace(path string, size float64) (text.Face, error) {
	src, err := loadFaceSource(path)
	if err != nil {
		log.Printf("[Font] %s failed to load (%v), using Go Regular (embedded)", path, err)
		src, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("load fallback font: %w", err)
		}
	} else {
		log.Printf("[Font] %s", path)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

func loadFaceSource(path string) (*text.GoTextFaceSource, error) {
	if path == "" {
		return nil, errors.New("no font path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return text.NewGoTextFaceSource(bytes.NewReader(data))
}

// PickFontFile asks for a font file with a native dialog. A cancelled dialog
// returns fallback.
func PickFontFile(fallback string) (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Font"),
		zenity.FileFilters{{
			Name:     "TrueType fonts",
			Patterns: []string{"*.ttf", "*.otf"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return fallback, nil
		}
		return "", err
	}
	log.Printf("[Font] picked %s", filename)
	return filename, nil
}
