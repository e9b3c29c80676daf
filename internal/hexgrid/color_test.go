package hexgrid

import (
	"regexp"
	"testing"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#6aa84f")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	want := RGB{R: 0x6a, G: 0xa8, B: 0x4f}
	if c != want {
		t.Errorf("ParseHex(#6aa84f) = %+v, want %+v", c, want)
	}
}

func TestParseHexShortForm(t *testing.T) {
	c, err := ParseHex("#fa0")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	want := RGB{R: 0xff, G: 0xaa, B: 0x00}
	if c != want {
		t.Errorf("ParseHex(#fa0) = %+v, want %+v", c, want)
	}
}

func TestParseHexInvalid(t *testing.T) {
	if _, err := ParseHex("not-a-color"); err == nil {
		t.Error("expected error for malformed color, got nil")
	}
}

func TestTintBounded(t *testing.T) {
	// Any amount, however extreme, must keep channels in range and
	// produce a valid 6-digit hex string.
	inputs := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{0x6a, 0xa8, 0x4f},
		{1, 200, 254},
	}
	amounts := []float64{-100, -1, -0.5, 0, 0.5, 1, 100}
	for _, in := range inputs {
		for _, amt := range amounts {
			got := Tint(in, amt)
			if !hexColorRe.MatchString(got.Hex()) {
				t.Errorf("Tint(%v, %v).Hex() = %q, not a valid color", in, amt, got.Hex())
			}
		}
	}
}

func TestTintDeterministic(t *testing.T) {
	in := RGB{0x79, 0xb0, 0x4c}
	a := Tint(in, 0.3)
	b := Tint(in, 0.3)
	if a != b {
		t.Errorf("Tint not deterministic: %v vs %v", a, b)
	}
}

func TestTintZeroAmountIdentity(t *testing.T) {
	in := RGB{10, 128, 250}
	if got := Tint(in, 0); got != in {
		t.Errorf("Tint(c, 0) = %v, want %v", got, in)
	}
}

func TestTintFactorClamp(t *testing.T) {
	// amount 5 clamps the factor to 1.9.
	in := RGB{100, 100, 100}
	got := Tint(in, 5)
	want := RGB{190, 190, 190}
	if got != want {
		t.Errorf("Tint(100s, 5) = %v, want %v (factor clamped to 1.9)", got, want)
	}
	// amount -5 clamps the factor to 0.2.
	got = Tint(in, -5)
	want = RGB{20, 20, 20}
	if got != want {
		t.Errorf("Tint(100s, -5) = %v, want %v (factor clamped to 0.2)", got, want)
	}
}

func TestTintHexRoundTrip(t *testing.T) {
	got := TintHex("#646464", 5)
	if got != "#bebebe" {
		t.Errorf("TintHex(#646464, 5) = %q, want #bebebe", got)
	}
}

func TestResolveTileColorPreference(t *testing.T) {
	// Surface cover wins over biome.
	withSurface := Terrain{Height: 0.5, Biome: BiomeDesert, Surface: SurfaceGrass}
	biomeOnly := Terrain{Height: 0.5, Biome: BiomeDesert}
	if ResolveTileColor(withSurface) == ResolveTileColor(biomeOnly) {
		t.Error("surface palette should take precedence over biome palette")
	}

	// Unknown surface and biome fall back to the default gray.
	unknown := Terrain{Height: 0.5, Biome: Biome(99), Surface: Surface(99)}
	if got := ResolveTileColor(unknown); got != defaultTileColor {
		t.Errorf("fallback color = %v, want %v", got, defaultTileColor)
	}
}

func TestResolveTileColorElevation(t *testing.T) {
	low := Terrain{Height: 0.1, Biome: BiomeGrassland}
	high := Terrain{Height: 0.9, Biome: BiomeGrassland}
	lc := ResolveTileColor(low)
	hc := ResolveTileColor(high)
	if lc.G >= hc.G {
		t.Errorf("expected higher terrain to be lighter: low %v, high %v", lc, hc)
	}
}

func TestResolveTileColorDeterministic(t *testing.T) {
	tr := Terrain{Height: 0.63, Heat: 0.4, Moisture: 0.7, Biome: BiomeForest, Surface: SurfaceCanopy}
	if ResolveTileColor(tr) != ResolveTileColor(tr) {
		t.Error("ResolveTileColor must be a pure function of terrain")
	}
}
