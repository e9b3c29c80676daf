// Package game runs an explorer session: world state, the per-frame
// input/update/render loop, and session key handling.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexfield/hexplore/internal/config"
	"github.com/hexfield/hexplore/internal/engine/camera"
	"github.com/hexfield/hexplore/internal/engine/ground"
	"github.com/hexfield/hexplore/internal/engine/input"
	"github.com/hexfield/hexplore/internal/engine/renderer"
	"github.com/hexfield/hexplore/internal/engine/scene"
	"github.com/hexfield/hexplore/internal/engine/window"
	"github.com/hexfield/hexplore/internal/hexgrid"
	"github.com/hexfield/hexplore/internal/logger"
	"github.com/hexfield/hexplore/internal/worldgen"
)

// Game owns one explorer session.
type Game struct {
	cfg *config.Config

	window  *window.Window
	input   *input.Input
	rend    *renderer.Renderer
	builder *scene.Builder

	world worldgen.World
	tiles []hexgrid.Tile
	cam   *camera.Camera

	hud     HUD
	fps     float64
	running bool
}

// New creates the window and rendering stack and generates the initial
// world from the configured seed.
func New(cfg *config.Config) (*Game, error) {
	win, err := window.New(window.Config{
		Title:      "Hexplore",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		window:  win,
		input:   input.New(),
		rend:    renderer.New(win.Renderer()),
		builder: scene.NewBuilder(cfg.World.HexSize),
	}
	g.regenerate(cfg.World.Seed)

	return g, nil
}

// regenerate replaces the world, tiles, and camera for a new seed. The
// camera is recreated so it starts over the new terrain's centroid.
func (g *Game) regenerate(seed int64) {
	g.world = worldgen.Generate(seed, g.cfg.World.Radius)
	g.tiles = hexgrid.BuildTiles(g.world.Cells, g.world.Terrain, g.cfg.World.HexSize)
	g.cam = camera.New(g.tiles)
	g.window.SetTitle(fmt.Sprintf("Hexplore - seed %d", seed))

	logger.Sugar.Infow("world generated",
		"seed", seed,
		"radius", g.cfg.World.Radius,
		"tiles", len(g.tiles),
	)
}

// Run drives the session loop until quit. Frame delta comes from wall
// time; the camera clamps it so stalls cannot integrate a huge step.
func (g *Game) Run() {
	g.running = true
	last := time.Now()

	frames := 0
	fpsWindow := last

	for g.running {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if g.input.Update() {
			break
		}
		g.handleEvents()
		if !g.running {
			break
		}

		move := g.moveInput()
		g.cam.Update(dt, move, func(x, z float64) float64 {
			return ground.SampleHeight(g.tiles, x, z)
		})

		g.renderFrame(now)

		frames++
		if elapsed := now.Sub(fpsWindow); elapsed >= time.Second {
			g.fps = float64(frames) / elapsed.Seconds()
			frames = 0
			fpsWindow = now
			logger.Sugar.Debugw("frame rate", "fps", g.fps)
		}
	}
}

// handleEvents consumes the events from the last input poll.
func (g *Game) handleEvents() {
	sens := g.cfg.Controls.MouseSensitivity

	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventQuit:
			g.running = false

		case input.EventKeyPress:
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_F:
				g.cam.ToggleMode()
				logger.Sugar.Infow("mode toggled", "mode", g.cam.Mode.String())
			case sdl.SCANCODE_R:
				g.regenerate(nextSeed(g.world.Seed))
			}

		case input.EventWindowResize:
			// The render path reads OutputSize every frame; the event
			// only needs acknowledging for diagnostics.
			logger.Sugar.Debugw("window resized", "width", ev.Width, "height", ev.Height)

		case input.EventLook:
			dy := float64(ev.DY)
			if g.cfg.Controls.InvertY {
				dy = -dy
			}
			g.cam.HandleDrag(float64(ev.DX)*sens, dy*sens)
		}
	}
}

// moveInput maps the held-key set into one frame of movement intent.
func (g *Game) moveInput() camera.MoveInput {
	return camera.MoveInput{
		Forward: g.input.AnyHeld(sdl.SCANCODE_W, sdl.SCANCODE_UP),
		Back:    g.input.AnyHeld(sdl.SCANCODE_S, sdl.SCANCODE_DOWN),
		Left:    g.input.AnyHeld(sdl.SCANCODE_A, sdl.SCANCODE_LEFT),
		Right:   g.input.AnyHeld(sdl.SCANCODE_D, sdl.SCANCODE_RIGHT),
		Up:      g.input.AnyHeld(sdl.SCANCODE_SPACE, sdl.SCANCODE_E),
		Down:    g.input.AnyHeld(sdl.SCANCODE_Q, sdl.SCANCODE_C),
		Sprint:  g.input.AnyHeld(sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT),
	}
}

// renderFrame composites one frame: sky, sorted tile polygons,
// crosshair, HUD overlay.
func (g *Game) renderFrame(now time.Time) {
	w, h := g.window.OutputSize()
	nearest := ground.NearestTileIndex(g.tiles, g.cam.Pose.X, g.cam.Pose.Z)

	g.rend.Clear()
	g.rend.DrawSky(w, h)

	items := g.builder.Build(g.tiles, g.cam.Pose, float64(w), float64(h), nearest)
	g.rend.DrawItems(items)

	g.rend.DrawCrosshair(w, h)

	biome := "void"
	if len(g.tiles) > 0 {
		biome = g.tiles[nearest].Terrain.Biome.String()
	}
	g.hud.Refresh(now, Snapshot{
		Mode:    g.cam.Mode.String(),
		X:       g.cam.Pose.X,
		Y:       g.cam.Pose.Y,
		Z:       g.cam.Pose.Z,
		Yaw:     g.cam.Pose.Yaw,
		Pitch:   g.cam.Pose.Pitch,
		Biome:   biome,
		Seed:    g.world.Seed,
		Tiles:   len(g.tiles),
		FPS:     g.fps,
		ShowFPS: g.cfg.Graphics.ShowFPS,
	})
	g.rend.DrawHUD(g.hud.Lines())

	g.window.Present()
}

// Close releases the window and SDL resources.
func (g *Game) Close() {
	g.window.Close()
}

// nextSeed steps the seed with an LCG so in-session regeneration is a
// reproducible sequence from the starting seed.
func nextSeed(s int64) int64 {
	return s*6364136223846793005 + 1442695040888963407
}
