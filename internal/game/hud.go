package game

import (
	"fmt"
	"time"
)

// hudInterval throttles HUD string rebuilding; formatting text every
// frame is wasted work at display rate.
const hudInterval = 100 * time.Millisecond

// Snapshot is the per-frame session state the HUD renders.
type Snapshot struct {
	Mode       string
	X, Y, Z    float64
	Yaw, Pitch float64
	Biome      string
	Seed       int64
	Tiles      int
	FPS        float64
	ShowFPS    bool
}

// HUD caches the formatted overlay lines between refreshes.
type HUD struct {
	last  time.Time
	lines []string
}

// Refresh rebuilds the overlay lines if the throttle interval has
// elapsed since the last rebuild.
func (h *HUD) Refresh(now time.Time, s Snapshot) {
	if !h.last.IsZero() && now.Sub(h.last) < hudInterval {
		return
	}
	h.last = now

	h.lines = h.lines[:0]
	h.lines = append(h.lines,
		fmt.Sprintf("mode %s  seed %d  tiles %d", s.Mode, s.Seed, s.Tiles),
		fmt.Sprintf("pos %.1f %.1f %.1f", s.X, s.Y, s.Z),
		fmt.Sprintf("yaw %.2f  pitch %.2f  on %s", s.Yaw, s.Pitch, s.Biome),
	)
	if s.ShowFPS {
		h.lines = append(h.lines, fmt.Sprintf("fps %.0f", s.FPS))
	}
}

// Lines returns the current overlay lines, top to bottom.
func (h *HUD) Lines() []string {
	return h.lines
}
