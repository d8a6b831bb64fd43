package assets

import (
	"embed"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader colors the white body silhouettes per character and enemy
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return fmt.Errorf("failed to read tint shader: %w", err)
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return fmt.Errorf("failed to compile tint shader: %w", err)
	}
	return nil
}

// DrawTinted draws img with geom, multiplied by clr. Without a compiled
// shader it falls back to a color scale.
func DrawTinted(dst, img *ebiten.Image, geom ebiten.GeoM, clr color.RGBA, alpha float32) {
	tint := []float32{float32(clr.R) / 255, float32(clr.G) / 255, float32(clr.B) / 255, alpha}
	if TintShader == nil {
		op := &ebiten.DrawImageOptions{GeoM: geom}
		op.ColorScale.Scale(tint[0]*alpha, tint[1]*alpha, tint[2]*alpha, alpha)
		dst.DrawImage(img, op)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawRectShaderOptions{GeoM: geom}
	op.Images[0] = img
	op.Uniforms = map[string]any{"Tint": tint}
	dst.DrawRectShader(b.Dx(), b.Dy(), TintShader, op)
}
