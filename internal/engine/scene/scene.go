// Package scene turns the tile list and camera pose into an ordered
// draw queue for one frame: project, shade, depth-sort.
package scene

import (
	"sort"

	"github.com/hexfield/hexplore/internal/engine/camera"
	"github.com/hexfield/hexplore/internal/engine/projection"
	"github.com/hexfield/hexplore/internal/hexgrid"
	"github.com/hexfield/hexplore/pkg/hexmath"
)

// Shading weights: distance fade dominates, elevation adds a slight
// bias so ridges read against valleys.
const (
	distanceFade  = 0.55
	elevationBias = 0.25
	elevationZero = 0.45
)

// DrawItem is one tile's screen-space polygon for the current frame,
// with its shaded fill color and painter depth.
type DrawItem struct {
	Xs, Ys    [6]float64
	Color     hexgrid.RGB
	Depth     float64
	Highlight bool
}

// Builder projects tiles into draw items. The item slice is reused
// across frames; the sorted order is what matters, not the storage.
type Builder struct {
	// HexSize is the tile circumradius used for corner generation.
	HexSize float64

	items []DrawItem
}

// NewBuilder creates a builder for tiles of the given circumradius.
func NewBuilder(hexSize float64) *Builder {
	return &Builder{HexSize: hexSize}
}

// Build projects every tile under the camera pose and returns the
// draw queue sorted back-to-front (painter's algorithm: there is no
// depth buffer, farther tiles draw first). A tile with any corner
// outside the frustum is skipped whole; partial clipping is not worth
// it at this geometry scale. nearestIdx marks the highlighted tile.
//
// The returned slice is owned by the builder and valid until the next
// Build call.
func (b *Builder) Build(tiles []hexgrid.Tile, pose camera.Pose, viewportW, viewportH float64, nearestIdx int) []DrawItem {
	b.items = b.items[:0]
	focal := projection.FocalLength(viewportH)

	for i, tile := range tiles {
		elev := tile.Elevation()
		corners := hexgrid.HexCorners(tile.X, tile.Y, b.HexSize)

		var item DrawItem
		depthSum := 0.0
		culled := false
		for ci, c := range corners {
			sp, ok := projection.Project(
				hexmath.Vec3{X: c.X, Y: elev, Z: c.Y},
				pose, viewportW, viewportH, focal,
			)
			if !ok {
				culled = true
				break
			}
			item.Xs[ci] = sp.X
			item.Ys[ci] = sp.Y
			depthSum += sp.Depth
		}
		if culled {
			continue
		}

		item.Depth = depthSum / 6
		item.Color = shade(tile, item.Depth)
		item.Highlight = i == nearestIdx
		b.items = append(b.items, item)
	}

	sort.Slice(b.items, func(i, j int) bool {
		return b.items[i].Depth > b.items[j].Depth
	})

	return b.items
}

// shade combines a linear distance fade with an elevation bias and
// applies both through the tint helper.
func shade(tile hexgrid.Tile, depth float64) hexgrid.RGB {
	fade := hexmath.Clamp(1-depth/projection.FarPlane, 0, 1)
	amount := (fade-1)*distanceFade + (tile.Terrain.Height-elevationZero)*elevationBias
	return hexgrid.Tint(tile.Color, amount)
}
