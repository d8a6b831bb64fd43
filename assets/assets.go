package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/automoto/kagerun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed maps/*.json
var mapFS embed.FS

// Maps returns the embedded level files, rooted so that map paths start with
// config.Session.MapDir.
func Maps() fs.FS {
	return mapFS
}

// MapNames lists the embedded level files in play order.
func MapNames() ([]string, error) {
	return ListMaps(mapFS, config.Session.MapDir)
}

// ListMaps returns the .json files in dir, numbered stems first in numeric
// order, then the rest by name.
func ListMaps(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.SortFunc(names, compareMapNames)
	return names, nil
}

func compareMapNames(a, b string) int {
	na, errA := strconv.Atoi(strings.TrimSuffix(a, path.Ext(a)))
	nb, errB := strconv.Atoi(strings.TrimSuffix(b, path.Ext(b)))
	switch {
	case errA == nil && errB == nil:
		return na - nb
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// ImageLoader caches generated sprites by key so each is built once.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]*ebiten.Image)}
}

func (l *ImageLoader) get(key string, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}
	img := build()
	l.cache[key] = img
	return img
}

var imageLoader = NewImageLoader()

// TileImage returns the cell sprite for a tile type. Autotile variants get
// progressively darker shades of the type's color.
func TileImage(tileType string, variant int) *ebiten.Image {
	key := fmt.Sprintf("tile/%s/%d", tileType, variant)
	return imageLoader.get(key, func() *ebiten.Image {
		base, ok := config.Render.TileColors[tileType]
		if !ok {
			base = config.White
		}
		clr := Shade(base, float64(variant)*config.Render.VariantShade)
		img := ebiten.NewImage(16, 16)
		switch tileType {
		case "platform", "half_tile":
			vector.FillRect(img, 0, 0, 16, 5, clr, false)
		case "spikes":
			for i := float32(0); i < 16; i += 4 {
				drawTriangle(img, i, 16, i+2, 10, i+4, 16, clr)
			}
		case "flora":
			vector.DrawFilledCircle(img, 8, 10, 6, clr, false)
		default:
			img.Fill(clr)
			vector.FillRect(img, 0, 0, 16, 2, Shade(clr, -0.15), false)
		}
		return img
	})
}

// CrumbleImage is a crumble block sprite for a color variant.
func CrumbleImage(variant int) *ebiten.Image {
	return imageLoader.get(fmt.Sprintf("crumble/%d", variant), func() *ebiten.Image {
		colors := config.Crumble.VariantColors
		clr := config.White
		if variant >= 0 && variant < len(colors) {
			clr = colors[variant]
		}
		img := ebiten.NewImage(16, 16)
		img.Fill(clr)
		vector.StrokeRect(img, 1, 1, 14, 14, 1, Shade(clr, 0.25), false)
		vector.StrokeLine(img, 4, 4, 12, 12, 1, Shade(clr, 0.25), false)
		return img
	})
}

// SpikeImage is a row of spikes pointing up, or down when ceiling is set.
func SpikeImage(variant int, ceiling bool) *ebiten.Image {
	return imageLoader.get(fmt.Sprintf("spike/%d/%t", variant, ceiling), func() *ebiten.Image {
		clr := Shade(config.Render.TileColors["spikes"], float64(variant)*config.Render.VariantShade)
		img := ebiten.NewImage(16, 16)
		for i := float32(0); i < 16; i += 4 {
			if ceiling {
				drawTriangle(img, i, 0, i+2, 6, i+4, 0, clr)
			} else {
				drawTriangle(img, i, 16, i+2, 10, i+4, 16, clr)
			}
		}
		return img
	})
}

// BodyImage is a white silhouette of the given size. Renderers tint it.
func BodyImage(w, h int) *ebiten.Image {
	return imageLoader.get(fmt.Sprintf("body/%dx%d", w, h), func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		img.Fill(color.White)
		// eyes, drawn facing right
		vector.FillRect(img, float32(w)-3, 3, 2, 2, color.Black, false)
		return img
	})
}

// PickupImage is a pickup's sprite.
func PickupImage(kind string) *ebiten.Image {
	return imageLoader.get("pickup/"+kind, func() *ebiten.Image {
		clr, ok := config.Render.PickupColors[kind]
		if !ok {
			clr = config.White
		}
		img := ebiten.NewImage(16, 16)
		vector.DrawFilledCircle(img, 8, 8, 6, clr, true)
		vector.StrokeCircle(img, 8, 8, 6, 1, Shade(clr, 0.3), true)
		return img
	})
}

// ParticleImage is one frame of a particle sequence. The sprite shrinks as
// the sequence plays out.
func ParticleImage(kind string, frame int) *ebiten.Image {
	return imageLoader.get(fmt.Sprintf("particle/%s/%d", kind, frame), func() *ebiten.Image {
		def, ok := config.Effects.Particles[kind]
		if !ok {
			def = config.ParticleDef{Frames: 1, Color: config.White}
		}
		size := 4
		if def.Frames > 1 {
			size = max(1, 4-frame*4/def.Frames)
		}
		img := ebiten.NewImage(size, size)
		img.Fill(def.Color)
		return img
	})
}

// CloudImage is one of the cloud silhouettes.
func CloudImage(index int) *ebiten.Image {
	return imageLoader.get(fmt.Sprintf("cloud/%d", index), func() *ebiten.Image {
		w := 48 + 16*index
		img := ebiten.NewImage(w, 20)
		clr := config.Render.CloudColor
		for x := 10; x < w-6; x += 10 {
			r := float32(6 + (x/10+index)%3*2)
			vector.DrawFilledCircle(img, float32(x), 20-r, r, clr, true)
		}
		return img
	})
}

// LanternImage is a paper lantern; size 0 is the largest.
func LanternImage(size int) *ebiten.Image {
	return imageLoader.get(fmt.Sprintf("lantern/%d", size), func() *ebiten.Image {
		h := 12 - size*3
		w := h * 2 / 3
		img := ebiten.NewImage(w, h)
		vector.FillRect(img, 0, 1, float32(w), float32(h-2), config.Render.LanternColor, false)
		vector.FillRect(img, 0, 0, float32(w), 1, config.Black, false)
		vector.FillRect(img, 0, float32(h-1), float32(w), 1, config.Black, false)
		return img
	})
}

// SparrowImage is one frame of the wing cycle.
func SparrowImage(frame int) *ebiten.Image {
	return imageLoader.get(fmt.Sprintf("sparrow/%d", frame), func() *ebiten.Image {
		img := ebiten.NewImage(7, 5)
		clr := config.Render.SparrowColor
		vector.FillRect(img, 2, 2, 3, 2, clr, false)
		wingY := float32(frame%4) / 2
		vector.StrokeLine(img, 0, wingY, 3, 2, 1, clr, false)
		vector.StrokeLine(img, 7, wingY, 4, 2, 1, clr, false)
		return img
	})
}

// ProjectileImage is a shot or dart sprite.
func ProjectileImage(sprite string) *ebiten.Image {
	return imageLoader.get("projectile/"+sprite, func() *ebiten.Image {
		if sprite == "blowdart" {
			img := ebiten.NewImage(6, 2)
			img.Fill(config.Render.DartColor)
			return img
		}
		img := ebiten.NewImage(4, 4)
		vector.DrawFilledCircle(img, 2, 2, 2, config.Render.ProjectileColor, true)
		return img
	})
}

// IconImage is a small HUD icon: shield, blessing, ramen or an ability.
func IconImage(name string) *ebiten.Image {
	return imageLoader.get("icon/"+name, func() *ebiten.Image {
		img := ebiten.NewImage(8, 8)
		switch name {
		case "shield":
			vector.DrawFilledCircle(img, 4, 4, 3.5, config.Render.ShieldColor, true)
		case "blessing":
			vector.DrawFilledCircle(img, 4, 4, 3.5, config.Render.BlessingColor, true)
		case "ramen":
			vector.FillRect(img, 1, 4, 6, 3, config.Render.PickupColors["ramen"], false)
		default:
			vector.FillRect(img, 1, 1, 6, 6, config.Render.SmokeColor, false)
		}
		return img
	})
}

// PreloadImages builds every fixed sprite up front so the first frames
// don't stall.
func PreloadImages() {
	for tileType := range config.Render.TileColors {
		for v := 0; v < 9; v++ {
			TileImage(tileType, v)
		}
	}
	for v := range config.Crumble.VariantColors {
		CrumbleImage(v)
	}
	for kind, def := range config.Effects.Particles {
		for f := 0; f < def.Frames; f++ {
			ParticleImage(kind, f)
		}
	}
	for kind := range config.Render.PickupColors {
		PickupImage(kind)
	}
	for i := 0; i < config.Ambience.CloudImages; i++ {
		CloudImage(i)
	}
	for s := range config.Ambience.LanternDepths {
		LanternImage(s)
	}
}

// Shade darkens a color by amount (0..1); a negative amount lightens it.
func Shade(c color.RGBA, amount float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v)
		if amount >= 0 {
			f *= 1 - min(amount, 1)
		} else {
			f += (255 - f) * min(-amount, 1)
		}
		return uint8(max(0, min(255, f)))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

var whitePixel *ebiten.Image

func drawTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	FillPolygon(dst, [][2]float32{{x0, y0}, {x1, y1}, {x2, y2}}, clr, ebiten.BlendSourceOver)
}

// FillPolygon fills a convex polygon with a flat color using blend.
func FillPolygon(dst *ebiten.Image, points [][2]float32, clr color.RGBA, blend ebiten.Blend) {
	if len(points) < 3 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vs := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		vs[i] = ebiten.Vertex{DstX: p[0], DstY: p[1], SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a}
	}
	is := make([]uint16, 0, 3*(len(points)-2))
	for i := 1; i < len(points)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	src := whitePixel.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	dst.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{Blend: blend})
}
