package hexgrid

// Cell is one generated grid cell: axial coordinates plus a coarse
// elevation level band.
type Cell struct {
	Q, R  int
	Level int
}

// Biome classifies a tile's climate band.
type Biome int

const (
	BiomeOcean Biome = iota
	BiomeBeach
	BiomeDesert
	BiomeSavanna
	BiomeGrassland
	BiomeForest
	BiomeRainforest
	BiomeTaiga
	BiomeTundra
	BiomeSnow
	BiomeBare
)

var biomeNames = map[Biome]string{
	BiomeOcean:      "ocean",
	BiomeBeach:      "beach",
	BiomeDesert:     "desert",
	BiomeSavanna:    "savanna",
	BiomeGrassland:  "grassland",
	BiomeForest:     "forest",
	BiomeRainforest: "rainforest",
	BiomeTaiga:      "taiga",
	BiomeTundra:     "tundra",
	BiomeSnow:       "snow",
	BiomeBare:       "bare",
}

func (b Biome) String() string {
	if n, ok := biomeNames[b]; ok {
		return n
	}
	return "unknown"
}

// MacroBiome is the coarse regional classification.
type MacroBiome int

const (
	MacroNone MacroBiome = iota
	MacroMarine
	MacroArid
	MacroTemperate
	MacroBoreal
	MacroPolar
	MacroAlpine
)

// Surface is the dominant ground cover, preferred over the biome when
// resolving a tile color.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceWater
	SurfaceSand
	SurfaceGrass
	SurfaceCanopy
	SurfaceRock
	SurfaceSnowpack
)

// Feature marks sparse decoration on a tile.
type Feature int

const (
	FeatureNone Feature = iota
	FeatureTrees
	FeatureRocks
	FeatureShrubs
)

// Terrain holds the per-cell attributes supplied by the generator.
// Height, Heat and Moisture are normalized to [0, 1].
type Terrain struct {
	Height   float64
	Heat     float64
	Moisture float64
	Biome    Biome
	Macro    MacroBiome
	Surface  Surface
	Feature  Feature
}

// DefaultTerrain is the flat-plains record substituted for any cell
// whose terrain entry is missing.
func DefaultTerrain() Terrain {
	return Terrain{
		Height:   0.5,
		Heat:     0.5,
		Moisture: 0.5,
		Biome:    BiomeGrassland,
		Macro:    MacroTemperate,
		Surface:  SurfaceGrass,
	}
}
