// Package renderer composites a built frame onto the SDL 2D surface:
// sky gradient, depth-sorted tile polygons, crosshair, HUD text.
package renderer

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexfield/hexplore/internal/engine/projection"
	"github.com/hexfield/hexplore/internal/engine/scene"
	"github.com/hexfield/hexplore/internal/hexgrid"
	"github.com/hexfield/hexplore/internal/logger"
	"github.com/hexfield/hexplore/pkg/hexmath"
)

// Sky gradient stops, top to horizon to ground haze.
var (
	skyTop     = hexgrid.RGB{R: 0x17, G: 0x24, B: 0x3d}
	skyHorizon = hexgrid.RGB{R: 0x7e, G: 0xa6, B: 0xc6}
	skyGround  = hexgrid.RGB{R: 0x3c, G: 0x46, B: 0x42}
)

const (
	strokeAlpha   = 110
	crosshairArm  = 9
	hudLineHeight = 12
)

// Renderer draws frames through an SDL 2D renderer. It holds reusable
// vertex buffers so the per-tile draw path does not allocate.
type Renderer struct {
	target *sdl.Renderer

	vx [6]int16
	vy [6]int16
}

// New wraps an SDL renderer.
func New(target *sdl.Renderer) *Renderer {
	logger.Info("renderer created")
	return &Renderer{target: target}
}

// Clear resets the frame to the sky-top color.
func (r *Renderer) Clear() {
	r.target.SetDrawColor(skyTop.R, skyTop.G, skyTop.B, 255)
	r.target.Clear()
}

// DrawSky paints the three-stop vertical gradient: deep sky down to
// the horizon line, then ground haze below it.
func (r *Renderer) DrawSky(width, height int) {
	horizon := int(float64(height) * projection.HorizonBias)

	const band = 4
	for y := 0; y < height; y += band {
		var c hexgrid.RGB
		if y < horizon {
			t := float64(y) / float64(horizon)
			c = lerpColor(skyTop, skyHorizon, t)
		} else {
			t := float64(y-horizon) / float64(height-horizon)
			c = lerpColor(skyHorizon, skyGround, t)
		}
		r.target.SetDrawColor(c.R, c.G, c.B, 255)
		r.target.FillRect(&sdl.Rect{
			X: 0, Y: int32(y),
			W: int32(width), H: band,
		})
	}
}

// DrawItems fills and strokes the sorted draw queue in order. The
// queue is already back-to-front, so plain iteration is the painter's
// algorithm. The highlighted tile gets a heavier, brighter stroke.
func (r *Renderer) DrawItems(items []scene.DrawItem) {
	for i := range items {
		item := &items[i]
		for c := 0; c < 6; c++ {
			r.vx[c] = clampCoord(item.Xs[c])
			r.vy[c] = clampCoord(item.Ys[c])
		}

		fill := sdl.Color{R: item.Color.R, G: item.Color.G, B: item.Color.B, A: 255}
		gfx.FilledPolygonColor(r.target, r.vx[:], r.vy[:], fill)

		if item.Highlight {
			bright := hexgrid.Tint(item.Color, 0.6)
			stroke := sdl.Color{R: bright.R, G: bright.G, B: bright.B, A: 255}
			gfx.PolygonColor(r.target, r.vx[:], r.vy[:], stroke)
			gfx.AAPolygonColor(r.target, r.vx[:], r.vy[:], stroke)
		} else {
			edge := hexgrid.Tint(item.Color, -0.35)
			stroke := sdl.Color{R: edge.R, G: edge.G, B: edge.B, A: strokeAlpha}
			gfx.PolygonColor(r.target, r.vx[:], r.vy[:], stroke)
		}
	}
}

// DrawCrosshair draws the screen-space marker at the projection
// origin, always on top.
func (r *Renderer) DrawCrosshair(width, height int) {
	cx := int32(width / 2)
	cy := int32(float64(height) * projection.HorizonBias)

	r.target.SetDrawColor(240, 244, 248, 220)
	r.target.DrawLine(cx-crosshairArm, cy, cx+crosshairArm, cy)
	r.target.DrawLine(cx, cy-crosshairArm, cx, cy+crosshairArm)
}

// DrawHUD renders the throttled HUD snapshot lines in the top-left
// corner using the gfx bitmap font.
func (r *Renderer) DrawHUD(lines []string) {
	white := sdl.Color{R: 235, G: 238, B: 240, A: 255}
	shadow := sdl.Color{R: 0, G: 0, B: 0, A: 180}
	for i, line := range lines {
		y := int32(8 + i*hudLineHeight)
		gfx.StringColor(r.target, 9, y+1, line, shadow)
		gfx.StringColor(r.target, 8, y, line, white)
	}
}

func lerpColor(a, b hexgrid.RGB, t float64) hexgrid.RGB {
	t = hexmath.Clamp(t, 0, 1)
	return hexgrid.RGB{
		R: uint8(hexmath.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(hexmath.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(hexmath.Lerp(float64(a.B), float64(b.B), t)),
	}
}

// clampCoord bounds a projected coordinate to the int16 range the gfx
// primitives accept; polygons partially off-screen stay drawable.
func clampCoord(v float64) int16 {
	return int16(hexmath.Clamp(v, -32000, 32000))
}
