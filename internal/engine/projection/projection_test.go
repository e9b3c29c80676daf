package projection

import (
	"math"
	"testing"

	"github.com/hexfield/hexplore/internal/engine/camera"
	"github.com/hexfield/hexplore/pkg/hexmath"
)

const (
	viewW = 800.0
	viewH = 600.0
)

func neutralPose() camera.Pose {
	return camera.Pose{X: 0, Y: 0, Z: 0, Yaw: 0, Pitch: 0}
}

func TestFocalLength(t *testing.T) {
	got := FocalLength(viewH)
	want := viewH * 0.86 / math.Tan(VerticalFOV/2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("FocalLength(%v) = %v, want %v", viewH, got, want)
	}
}

func TestProjectStraightAhead(t *testing.T) {
	const dist = 25.0
	focal := FocalLength(viewH)

	sp, ok := Project(hexmath.Vec3{X: 0, Y: 0, Z: dist}, neutralPose(), viewW, viewH, focal)
	if !ok {
		t.Fatal("point straight ahead was culled")
	}
	if math.Abs(sp.X-viewW/2) > 1e-9 {
		t.Errorf("screen x = %v, want horizontal center %v", sp.X, viewW/2)
	}
	if math.Abs(sp.Y-viewH*HorizonBias) > 1e-9 {
		t.Errorf("screen y = %v, want horizon line %v", sp.Y, viewH*HorizonBias)
	}
	if math.Abs(sp.Depth-dist) > 1e-9 {
		t.Errorf("depth = %v, want %v", sp.Depth, dist)
	}
}

func TestProjectCullsNearPlane(t *testing.T) {
	focal := FocalLength(viewH)

	// A point at the camera position has depth ~0.
	if _, ok := Project(hexmath.Vec3{}, neutralPose(), viewW, viewH, focal); ok {
		t.Error("point at camera position should be culled")
	}

	// Behind the camera.
	if _, ok := Project(hexmath.Vec3{Z: -5}, neutralPose(), viewW, viewH, focal); ok {
		t.Error("point behind the camera should be culled")
	}
}

func TestProjectCullsFarPlane(t *testing.T) {
	focal := FocalLength(viewH)
	if _, ok := Project(hexmath.Vec3{Z: FarPlane + 1}, neutralPose(), viewW, viewH, focal); ok {
		t.Error("point beyond the far plane should be culled")
	}
}

func TestProjectPerspectiveShrink(t *testing.T) {
	focal := FocalLength(viewH)

	near, ok := Project(hexmath.Vec3{X: 2, Z: 10}, neutralPose(), viewW, viewH, focal)
	if !ok {
		t.Fatal("near point culled")
	}
	far, ok := Project(hexmath.Vec3{X: 2, Z: 100}, neutralPose(), viewW, viewH, focal)
	if !ok {
		t.Fatal("far point culled")
	}

	nearOffset := near.X - viewW/2
	farOffset := far.X - viewW/2
	if farOffset >= nearOffset {
		t.Errorf("far offset %v should be smaller than near offset %v", farOffset, nearOffset)
	}
}

func TestProjectFollowsYaw(t *testing.T) {
	focal := FocalLength(viewH)
	pose := neutralPose()
	pose.Yaw = math.Pi / 2 // facing +X

	sp, ok := Project(hexmath.Vec3{X: 30}, pose, viewW, viewH, focal)
	if !ok {
		t.Fatal("point along the view axis was culled")
	}
	if math.Abs(sp.X-viewW/2) > 1e-6 {
		t.Errorf("screen x = %v, want center for a point dead ahead", sp.X)
	}
	if math.Abs(sp.Depth-30) > 1e-9 {
		t.Errorf("depth = %v, want 30", sp.Depth)
	}
}

func TestProjectPitchMovesHorizon(t *testing.T) {
	focal := FocalLength(viewH)

	level, ok := Project(hexmath.Vec3{Z: 20}, neutralPose(), viewW, viewH, focal)
	if !ok {
		t.Fatal("level point culled")
	}

	pose := neutralPose()
	pose.Pitch = 0.3 // looking up
	up, ok := Project(hexmath.Vec3{Z: 20}, pose, viewW, viewH, focal)
	if !ok {
		t.Fatal("point culled while pitched")
	}

	// Looking up pushes level geometry down the screen.
	if up.Y <= level.Y {
		t.Errorf("pitched-up projection y = %v, want below level projection y = %v", up.Y, level.Y)
	}
}

func TestProjectAboveCameraIsHigherOnScreen(t *testing.T) {
	focal := FocalLength(viewH)

	ground, _ := Project(hexmath.Vec3{Y: -2, Z: 20}, neutralPose(), viewW, viewH, focal)
	sky, _ := Project(hexmath.Vec3{Y: 2, Z: 20}, neutralPose(), viewW, viewH, focal)

	if sky.Y >= ground.Y {
		t.Errorf("sky point y %v should be above (smaller than) ground point y %v", sky.Y, ground.Y)
	}
}
