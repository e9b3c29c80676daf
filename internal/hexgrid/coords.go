// Package hexgrid provides the pointy-top hexagonal tiling for the
// explorer: axial coordinates, planar projection, polygon geometry,
// terrain attributes, and tile color resolution.
package hexgrid

import (
	"fmt"
	"math"
	"strings"

	"github.com/hexfield/hexplore/pkg/hexmath"
)

const sqrt3 = 1.7320508075688772

// Axial addresses a hex cell using axial coordinates (q, r).
// The third cube coordinate s is derived: s = -q - r.
type Axial struct {
	Q, R int
}

// S returns the implicit third cube coordinate.
func (a Axial) S() int {
	return -a.Q - a.R
}

// neighborDirections lists the six axial neighbor offsets.
var neighborDirections = [6]Axial{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent axial coordinates.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range neighborDirections {
		out[i] = Axial{Q: a.Q + d.Q, R: a.R + d.R}
	}
	return out
}

// Distance returns the hex distance between two coordinates, the
// maximum absolute difference of the cube components.
func Distance(a, b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// AxialToPixel projects axial coordinates to the planar center of a
// pointy-top hex of the given circumradius.
func AxialToPixel(q, r int, size float64) (x, y float64) {
	x = 1.5 * size * float64(q)
	y = size * sqrt3 * (float64(r) + float64(q)/2)
	return x, y
}

// HexCorners returns the six vertices of a pointy-top hexagon centered
// at (cx, cy). Vertex i sits at angle 30 + 60*i degrees.
func HexCorners(cx, cy, size float64) [6]hexmath.Vec2 {
	var out [6]hexmath.Vec2
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * (60*float64(i) + 30)
		out[i] = hexmath.Vec2{
			X: cx + size*math.Cos(angle),
			Y: cy + size*math.Sin(angle),
		}
	}
	return out
}

// HexPolygonPoints renders the six corners as an SVG-style point list:
// space-separated "x,y" pairs at 2-decimal precision.
func HexPolygonPoints(x, y, size float64) string {
	corners := HexCorners(x, y, size)
	parts := make([]string, 0, 6)
	for _, c := range corners {
		parts = append(parts, fmt.Sprintf("%.2f,%.2f", c.X, c.Y))
	}
	return strings.Join(parts, " ")
}
