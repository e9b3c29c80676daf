// Package ground answers elevation queries against the tile list for
// camera collision and tile highlighting.
package ground

import (
	"github.com/hexfield/hexplore/internal/hexgrid"
)

// NearestTileIndex returns the index of the tile whose center is
// closest to the planar query point, scanning linearly with squared
// distances. Ties keep the lowest index. An empty tile list returns 0;
// callers that can see an empty world must guard for it.
//
// Linear scan is fine at the tile counts a generation radius produces.
// A grid bucket keyed by axial coordinate is the upgrade path if that
// ever changes.
func NearestTileIndex(tiles []hexgrid.Tile, x, z float64) int {
	best := 0
	bestDist := 0.0
	for i, t := range tiles {
		dx := t.X - x
		dz := t.Y - z
		d := dx*dx + dz*dz
		if i == 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// SampleHeight returns the world-space ground elevation at (x, z):
// the nearest tile's terrain-scaled height, or 0 for an empty world.
func SampleHeight(tiles []hexgrid.Tile, x, z float64) float64 {
	if len(tiles) == 0 {
		return 0
	}
	return tiles[NearestTileIndex(tiles, x, z)].Elevation()
}
