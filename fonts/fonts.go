package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Small FontName = "small"
	Title FontName = "title"
	Menu  FontName = "menu"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
	sized = map[float64]font.Face{}

	regular *truetype.Font
)

// LoadDefaults parses the bundled Go fonts and registers every named face.
func LoadDefaults() error {
	var err error
	regular, err = truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse bold font: %w", err)
	}
	fonts[HUD] = truetype.NewFace(regular, &truetype.Options{Size: 8})
	fonts[Small] = truetype.NewFace(regular, &truetype.Options{Size: 6})
	fonts[Menu] = truetype.NewFace(bold, &truetype.Options{Size: 10})
	fonts[Title] = truetype.NewFace(bold, &truetype.Options{Size: 20})
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(f, &truetype.Options{Size: size})
	return nil
}

// Sized returns a regular face at the given point size, cached per size.
// Tips pick their own size.
func Sized(size float64) font.Face {
	if f, ok := sized[size]; ok {
		return f
	}
	if regular == nil {
		log.Printf("Warning: fonts not loaded, using %s for size %v", HUD, size)
		return getFont(HUD)
	}
	f := truetype.NewFace(regular, &truetype.Options{Size: size})
	sized[size] = f
	return f
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
