package hexgrid

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/hexfield/hexplore/pkg/hexmath"
)

// RGB is a display color. Palette tables are defined as hex strings,
// but everything past the parse boundary works on channel triples.
type RGB struct {
	R, G, B uint8
}

// Hex encodes the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex decodes a #rrggbb or #rgb color string.
func ParseHex(s string) (RGB, error) {
	if len(s) == 4 && s[0] == '#' {
		// Expand the short form: #abc -> #aabbcc.
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Tint multiplies each channel by clamp(1+amount, 0.2, 1.9). Positive
// amounts lighten, negative amounts darken. Channels re-clamp to
// [0, 255], so the result is always a valid color.
func Tint(c RGB, amount float64) RGB {
	f := hexmath.Clamp(1+amount, 0.2, 1.9)
	return RGB{
		R: tintChannel(c.R, f),
		G: tintChannel(c.G, f),
		B: tintChannel(c.B, f),
	}
}

func tintChannel(ch uint8, f float64) uint8 {
	return uint8(hexmath.Clamp(math.Round(float64(ch)*f), 0, 255))
}

// TintHex is the string-boundary variant of Tint. A malformed input is
// a palette-table precondition violation and is returned unchanged.
func TintHex(s string, amount float64) string {
	c, err := ParseHex(s)
	if err != nil {
		return s
	}
	return Tint(c, amount).Hex()
}

// Palette tables. Surface cover wins over biome; unknown entries fall
// back to a neutral gray.
var (
	surfacePalette = map[Surface]RGB{
		SurfaceWater:    mustHex("#2e62a8"),
		SurfaceSand:     mustHex("#d8c68a"),
		SurfaceGrass:    mustHex("#6aa84f"),
		SurfaceCanopy:   mustHex("#38761d"),
		SurfaceRock:     mustHex("#7f7a72"),
		SurfaceSnowpack: mustHex("#e8eef2"),
	}

	biomePalette = map[Biome]RGB{
		BiomeOcean:      mustHex("#27567f"),
		BiomeBeach:      mustHex("#e0d3a0"),
		BiomeDesert:     mustHex("#d9b356"),
		BiomeSavanna:    mustHex("#b7a84a"),
		BiomeGrassland:  mustHex("#79b04c"),
		BiomeForest:     mustHex("#46793a"),
		BiomeRainforest: mustHex("#2f6b33"),
		BiomeTaiga:      mustHex("#537b5a"),
		BiomeTundra:     mustHex("#9aa58c"),
		BiomeSnow:       mustHex("#e9edf0"),
		BiomeBare:       mustHex("#8c857b"),
	}

	defaultTileColor = mustHex("#8a8f98")
)

// ResolveTileColor maps terrain attributes to a display color. It is a
// pure function of the terrain record: the surface-cover palette is
// preferred, then the biome palette, then the default gray, and the
// result is lightened or darkened in proportion to elevation within a
// bounded range.
func ResolveTileColor(t Terrain) RGB {
	base, ok := surfacePalette[t.Surface]
	if !ok {
		base, ok = biomePalette[t.Biome]
	}
	if !ok {
		base = defaultTileColor
	}
	adjust := hexmath.Clamp((t.Height-0.5)*0.5, -0.2, 0.25)
	return Tint(base, adjust)
}
