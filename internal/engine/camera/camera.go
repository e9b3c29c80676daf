// Package camera provides the free-look first-person camera and its
// walk/fly locomotion rules.
package camera

import (
	gomath "math"

	"github.com/hexfield/hexplore/internal/engine/ground"
	"github.com/hexfield/hexplore/internal/hexgrid"
	"github.com/hexfield/hexplore/pkg/hexmath"
)

// Pitch limits keep the horizon sane and prevent gimbal flip.
const (
	MinPitch = -1.2
	MaxPitch = 0.75
)

// Locomotion constants.
const (
	EyeHeight     = 1.65
	FlyClearance  = 0.3
	WalkSpeed     = 6.0
	FlySpeed      = 11.0
	VerticalSpeed = 7.0
	SprintFactor  = 1.85

	// Frame delta is capped so a tab-resume or debugger stall cannot
	// integrate a huge step.
	maxFrameDelta = 0.05
)

// Mode selects the locomotion rules.
type Mode int

const (
	ModeWalk Mode = iota
	ModeFly
)

func (m Mode) String() string {
	if m == ModeFly {
		return "fly"
	}
	return "walk"
}

// Pose is the camera's position and orientation. It is mutated in
// place once per frame by the render loop, which is its only writer.
type Pose struct {
	X, Y, Z    float64
	Yaw, Pitch float64
}

// MoveInput is the held-key movement state for one frame.
type MoveInput struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
	Sprint        bool
}

// GroundFunc samples world ground elevation at a planar position.
type GroundFunc func(x, z float64) float64

// Camera combines a pose with locomotion mode and look sensitivity.
type Camera struct {
	Pose Pose
	Mode Mode

	DragSensitivity float64
	// Vertical drag is damped relative to horizontal.
	PitchDragFactor float64
}

// New places a camera over the tile set: at the centroid of all tile
// centers, standing on the ground there, with scouting defaults for
// orientation. An empty tile list yields a fixed default pose at the
// origin.
func New(tiles []hexgrid.Tile) *Camera {
	c := &Camera{
		Mode:            ModeWalk,
		DragSensitivity: 0.0035,
		PitchDragFactor: 0.75,
	}

	if len(tiles) == 0 {
		c.Pose = Pose{Y: EyeHeight, Pitch: -0.12}
		return c
	}

	var cx, cz float64
	for _, t := range tiles {
		cx += t.X
		cz += t.Y
	}
	cx /= float64(len(tiles))
	cz /= float64(len(tiles))

	groundY := tiles[ground.NearestTileIndex(tiles, cx, cz)].Elevation()

	c.Pose = Pose{
		X:     cx,
		Y:     groundY + EyeHeight,
		Z:     cz,
		Yaw:   0,
		Pitch: -0.12,
	}
	return c
}

// ToggleMode flips between walk and fly.
func (c *Camera) ToggleMode() {
	if c.Mode == ModeWalk {
		c.Mode = ModeFly
	} else {
		c.Mode = ModeWalk
	}
}

// Update integrates one frame of held input into the pose. dt is in
// seconds and is clamped to 50ms. ground supplies terrain elevation
// for the collision rules: walk pins the eye to the ground exactly,
// fly clamps it to a small clearance above.
func (c *Camera) Update(dt float64, in MoveInput, ground GroundFunc) {
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	var mx, mz float64
	if in.Forward {
		mz++
	}
	if in.Back {
		mz--
	}
	if in.Right {
		mx++
	}
	if in.Left {
		mx--
	}

	if mx != 0 || mz != 0 {
		dir := hexmath.Vec2{X: mx, Y: mz}.Normalize()

		speed := WalkSpeed
		if c.Mode == ModeFly {
			speed = FlySpeed
		}
		if in.Sprint {
			speed *= SprintFactor
		}

		sinY := gomath.Sin(c.Pose.Yaw)
		cosY := gomath.Cos(c.Pose.Yaw)
		// Forward is (sin yaw, cos yaw) on the XZ plane; strafe is its
		// perpendicular.
		c.Pose.X += (dir.Y*sinY + dir.X*cosY) * speed * dt
		c.Pose.Z += (dir.Y*cosY - dir.X*sinY) * speed * dt
	}

	groundY := ground(c.Pose.X, c.Pose.Z)

	switch c.Mode {
	case ModeWalk:
		// Instantaneous snap: terrain steps are coarse, smoothing would
		// just lag the eye behind the tile the camera stands on.
		c.Pose.Y = groundY + EyeHeight
	case ModeFly:
		if in.Up {
			c.Pose.Y += VerticalSpeed * dt
		}
		if in.Down {
			c.Pose.Y -= VerticalSpeed * dt
		}
		floor := groundY + FlyClearance
		if c.Pose.Y < floor {
			c.Pose.Y = floor
		}
	}

	c.Pose.Pitch = hexmath.Clamp(c.Pose.Pitch, MinPitch, MaxPitch)
	c.Pose.Yaw = hexmath.WrapAngle(c.Pose.Yaw)
}

// HandleDrag applies a pointer look delta directly, no smoothing.
func (c *Camera) HandleDrag(dx, dy float64) {
	c.Pose.Yaw += dx * c.DragSensitivity
	c.Pose.Pitch -= dy * c.DragSensitivity * c.PitchDragFactor

	c.Pose.Pitch = hexmath.Clamp(c.Pose.Pitch, MinPitch, MaxPitch)
	c.Pose.Yaw = hexmath.WrapAngle(c.Pose.Yaw)
}
