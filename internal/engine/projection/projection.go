// Package projection implements the pinhole-camera transform from
// world space to screen space.
package projection

import (
	"math"

	"github.com/hexfield/hexplore/internal/engine/camera"
	"github.com/hexfield/hexplore/pkg/hexmath"
)

const (
	// NearPlane rejects geometry close enough to blow up the
	// perspective divide; FarPlane discards unrenderably distant
	// geometry.
	NearPlane = 0.1
	FarPlane  = 320.0

	// VerticalFOV is the vertical field of view in radians.
	VerticalFOV = 1.05

	focalScale = 0.86

	// HorizonBias places the projection origin below vertical
	// mid-screen so more ground than sky is visible.
	HorizonBias = 0.55
)

// ScreenPoint is a projected world point: screen coordinates plus the
// camera-space forward depth. Frame-scoped, never persisted.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// FocalLength derives the focal length from the current viewport
// height. It is recomputed every frame so window resizes and DPI
// changes take effect immediately.
func FocalLength(viewportHeight float64) float64 {
	return viewportHeight * focalScale / math.Tan(VerticalFOV/2)
}

// Project maps a world point to screen space under the given camera
// pose. The point is translated into camera-relative space, rotated by
// -yaw about the vertical axis and then -pitch about the resulting
// horizontal axis, frustum-tested against the near/far planes, and
// perspective-divided. ok is false when the point is culled; that is a
// normal outcome, not an error.
func Project(p hexmath.Vec3, pose camera.Pose, viewportW, viewportH, focal float64) (sp ScreenPoint, ok bool) {
	dx := p.X - pose.X
	dy := p.Y - pose.Y
	dz := p.Z - pose.Z

	sinY := math.Sin(pose.Yaw)
	cosY := math.Cos(pose.Yaw)
	x1 := dx*cosY - dz*sinY
	z1 := dx*sinY + dz*cosY

	sinP := math.Sin(pose.Pitch)
	cosP := math.Cos(pose.Pitch)
	y2 := dy*cosP - z1*sinP
	depth := z1*cosP + dy*sinP

	if depth <= NearPlane || depth >= FarPlane {
		return ScreenPoint{}, false
	}

	return ScreenPoint{
		X:     viewportW/2 + x1/depth*focal,
		Y:     viewportH*HorizonBias - y2/depth*focal,
		Depth: depth,
	}, true
}
