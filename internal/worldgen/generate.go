package worldgen

import (
	"github.com/hexfield/hexplore/internal/hexgrid"
	"github.com/hexfield/hexplore/pkg/hexmath"
)

// Field frequencies and octave settings. Heat varies more slowly than
// height so climate bands stay coherent across the map.
const (
	heightFreq   = 0.11
	heatFreq     = 0.05
	moistureFreq = 0.09
	featureFreq  = 0.7
)

// Seed offsets decorrelate the noise fields derived from one world seed.
const (
	heatSeedOffset     = 0x9e3779b9
	moistureSeedOffset = 0x7f4a7c15
	featureSeedOffset  = 0x2545f491
)

// World is one generated epoch: index-aligned cells and terrain.
type World struct {
	Seed    int64
	Radius  int
	Cells   []hexgrid.Cell
	Terrain []hexgrid.Terrain
}

// Generate builds the hex disc of the given radius around the origin.
// The result is fully determined by (seed, radius): cell order is the
// axial scan order and every terrain attribute derives from seeded
// noise fields.
func Generate(seed int64, radius int) World {
	height := NewNoise(seed)
	heat := NewNoise(seed + heatSeedOffset)
	moisture := NewNoise(seed + moistureSeedOffset)
	feature := NewNoise(seed + featureSeedOffset)

	count := 1 + 3*radius*(radius+1)
	w := World{
		Seed:    seed,
		Radius:  radius,
		Cells:   make([]hexgrid.Cell, 0, count),
		Terrain: make([]hexgrid.Terrain, 0, count),
	}

	for q := -radius; q <= radius; q++ {
		r1 := maxInt(-radius, -q-radius)
		r2 := minInt(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			x, y := hexgrid.AxialToPixel(q, r, 1)

			h := height.Fractal(x, y, heightFreq, 4, 2.0, 0.5)
			// Fade height toward the rim so the disc reads as an island.
			rim := float64(hexgrid.Distance(hexgrid.Axial{}, hexgrid.Axial{Q: q, R: r})) / float64(radius+1)
			h = hexmath.Clamp(h*(1.15-0.55*rim*rim), 0, 1)

			t := hexgrid.Terrain{
				Height:   h,
				Heat:     heat.Fractal(x, y, heatFreq, 3, 2.0, 0.5),
				Moisture: moisture.Fractal(x, y, moistureFreq, 3, 2.0, 0.5),
			}
			t.Biome = classifyBiome(t)
			t.Macro = classifyMacro(t)
			t.Surface = surfaceFor(t)
			t.Feature = featureFor(t, feature.At(x*featureFreq, y*featureFreq))

			w.Cells = append(w.Cells, hexgrid.Cell{Q: q, R: r, Level: int(h * 4)})
			w.Terrain = append(w.Terrain, t)
		}
	}

	markShorelines(&w)

	return w
}

// markShorelines converts land cells bordering ocean into beach so
// coastlines read as a continuous band. Ocean cells are never touched,
// so the result does not depend on iteration order.
func markShorelines(w *World) {
	index := make(map[hexgrid.Axial]int, len(w.Cells))
	for i, c := range w.Cells {
		index[hexgrid.Axial{Q: c.Q, R: c.R}] = i
	}

	for i, c := range w.Cells {
		t := &w.Terrain[i]
		if t.Biome == hexgrid.BiomeOcean || t.Biome == hexgrid.BiomeBeach {
			continue
		}
		for _, nb := range (hexgrid.Axial{Q: c.Q, R: c.R}).Neighbors() {
			j, ok := index[nb]
			if !ok || w.Terrain[j].Biome != hexgrid.BiomeOcean {
				continue
			}
			t.Biome = hexgrid.BiomeBeach
			t.Surface = hexgrid.SurfaceSand
			t.Feature = hexgrid.FeatureNone
			break
		}
	}
}

// classifyBiome picks a climate band from height, heat and moisture.
func classifyBiome(t hexgrid.Terrain) hexgrid.Biome {
	switch {
	case t.Height < 0.28:
		return hexgrid.BiomeOcean
	case t.Height < 0.33:
		return hexgrid.BiomeBeach
	case t.Height > 0.85:
		if t.Heat < 0.4 {
			return hexgrid.BiomeSnow
		}
		return hexgrid.BiomeBare
	}

	switch {
	case t.Heat < 0.25:
		if t.Moisture < 0.4 {
			return hexgrid.BiomeTundra
		}
		return hexgrid.BiomeTaiga
	case t.Heat > 0.72:
		if t.Moisture < 0.35 {
			return hexgrid.BiomeDesert
		}
		if t.Moisture < 0.6 {
			return hexgrid.BiomeSavanna
		}
		return hexgrid.BiomeRainforest
	default:
		if t.Moisture < 0.35 {
			return hexgrid.BiomeGrassland
		}
		return hexgrid.BiomeForest
	}
}

func classifyMacro(t hexgrid.Terrain) hexgrid.MacroBiome {
	switch {
	case t.Height < 0.33:
		return hexgrid.MacroMarine
	case t.Height > 0.85:
		return hexgrid.MacroAlpine
	case t.Heat < 0.25:
		if t.Heat < 0.12 {
			return hexgrid.MacroPolar
		}
		return hexgrid.MacroBoreal
	case t.Heat > 0.72 && t.Moisture < 0.35:
		return hexgrid.MacroArid
	default:
		return hexgrid.MacroTemperate
	}
}

func surfaceFor(t hexgrid.Terrain) hexgrid.Surface {
	switch t.Biome {
	case hexgrid.BiomeOcean:
		return hexgrid.SurfaceWater
	case hexgrid.BiomeBeach, hexgrid.BiomeDesert:
		return hexgrid.SurfaceSand
	case hexgrid.BiomeForest, hexgrid.BiomeRainforest:
		return hexgrid.SurfaceCanopy
	case hexgrid.BiomeSnow:
		return hexgrid.SurfaceSnowpack
	case hexgrid.BiomeBare:
		return hexgrid.SurfaceRock
	case hexgrid.BiomeGrassland, hexgrid.BiomeSavanna, hexgrid.BiomeTaiga:
		return hexgrid.SurfaceGrass
	default:
		return hexgrid.SurfaceNone
	}
}

// featureFor places sparse decoration using a decorrelated noise sample.
func featureFor(t hexgrid.Terrain, sample float64) hexgrid.Feature {
	if t.Biome == hexgrid.BiomeOcean || t.Biome == hexgrid.BiomeBeach {
		return hexgrid.FeatureNone
	}
	switch {
	case sample > 0.55 && (t.Biome == hexgrid.BiomeForest || t.Biome == hexgrid.BiomeRainforest || t.Biome == hexgrid.BiomeTaiga):
		return hexgrid.FeatureTrees
	case sample > 0.7 && (t.Biome == hexgrid.BiomeBare || t.Biome == hexgrid.BiomeTundra):
		return hexgrid.FeatureRocks
	case sample < -0.65 && t.Moisture > 0.3:
		return hexgrid.FeatureShrubs
	default:
		return hexgrid.FeatureNone
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
