package hexgrid

// HeightScale converts a normalized terrain height into world-space
// elevation units.
const HeightScale = 6.0

// Tile is one renderable hex: axial address, planar center position,
// terrain payload, and precomputed polygon/color. Tiles are built
// wholesale per world generation and consumed read-only afterwards.
type Tile struct {
	Coord   Axial
	X, Y    float64
	Terrain Terrain
	Points  string
	Color   RGB
}

// Elevation returns the tile's world-space surface height.
func (t Tile) Elevation() float64 {
	return t.Terrain.Height * HeightScale
}

// BuildTiles zips cells and terrain by index into renderable tiles.
// A missing terrain entry is substituted with the default flat-plains
// record rather than dropping the cell.
func BuildTiles(cells []Cell, terrain []Terrain, size float64) []Tile {
	tiles := make([]Tile, 0, len(cells))
	for i, c := range cells {
		t := DefaultTerrain()
		if i < len(terrain) {
			t = terrain[i]
		}
		x, y := AxialToPixel(c.Q, c.R, size)
		tiles = append(tiles, Tile{
			Coord:   Axial{Q: c.Q, R: c.R},
			X:       x,
			Y:       y,
			Terrain: t,
			Points:  HexPolygonPoints(x, y, size),
			Color:   ResolveTileColor(t),
		})
	}
	return tiles
}

// Bounds is an axis-aligned planar bounding box.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// ComputeBounds returns the tile bounding box padded by size on each
// side, or a fixed default box when there are no tiles.
func ComputeBounds(tiles []Tile, size float64) Bounds {
	if len(tiles) == 0 {
		return Bounds{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}
	}
	b := Bounds{
		MinX: tiles[0].X, MaxX: tiles[0].X,
		MinY: tiles[0].Y, MaxY: tiles[0].Y,
	}
	for _, t := range tiles[1:] {
		if t.X < b.MinX {
			b.MinX = t.X
		}
		if t.X > b.MaxX {
			b.MaxX = t.X
		}
		if t.Y < b.MinY {
			b.MinY = t.Y
		}
		if t.Y > b.MaxY {
			b.MaxY = t.Y
		}
	}
	b.MinX -= size
	b.MaxX += size
	b.MinY -= size
	b.MaxY += size
	return b
}
