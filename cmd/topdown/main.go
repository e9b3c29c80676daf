// Package main is a terminal top-down viewer for generated worlds.
// It renders the same seeded terrain the first-person explorer walks,
// one character cell per sample, with pan and reseed controls.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/hexfield/hexplore/internal/config"
	"github.com/hexfield/hexplore/internal/engine/ground"
	"github.com/hexfield/hexplore/internal/hexgrid"
	"github.com/hexfield/hexplore/internal/logger"
	"github.com/hexfield/hexplore/internal/worldgen"
)

// Terminal cells are roughly twice as tall as wide, so the horizontal
// sample step is finer to keep hexes round on screen.
const (
	sampleStepX = 0.55
	sampleStepY = 1.05
	panStep     = 2.0
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Console logging would draw over the terminal UI, so only the
	// file sink is attached.
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "topdown: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing screen")
	}
	defer screen.Fini()

	v := newViewer(cfg)
	v.draw(screen)

	for {
		switch e := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			if !v.handleKey(e) {
				return nil
			}
		}
		v.draw(screen)
	}
}

// viewer holds the generated world and the pan state.
type viewer struct {
	cfg   *config.Config
	seed  int64
	world worldgen.World
	tiles []hexgrid.Tile

	// Planar world position under the screen center.
	camX, camZ float64
}

func newViewer(cfg *config.Config) *viewer {
	v := &viewer{cfg: cfg}
	v.regenerate(cfg.World.Seed)
	return v
}

// regenerate rebuilds the world for a new seed and recenters the pan.
func (v *viewer) regenerate(seed int64) {
	v.seed = seed
	v.world = worldgen.Generate(seed, v.cfg.World.Radius)
	v.tiles = hexgrid.BuildTiles(v.world.Cells, v.world.Terrain, v.cfg.World.HexSize)
	v.camX = 0
	v.camZ = 0

	logger.Sugar.Infow("world generated",
		"seed", seed,
		"radius", v.cfg.World.Radius,
		"tiles", len(v.tiles),
	)
}

// handleKey applies one key event. Returns false when the viewer
// should exit.
func (v *viewer) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.camZ -= panStep
	case tcell.KeyDown:
		v.camZ += panStep
	case tcell.KeyLeft:
		v.camX -= panStep
	case tcell.KeyRight:
		v.camX += panStep
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q':
			return false
		case 'w':
			v.camZ -= panStep
		case 's':
			v.camZ += panStep
		case 'a':
			v.camX -= panStep
		case 'd':
			v.camX += panStep
		case 'r':
			v.regenerate(v.seed*6364136223846793005 + 1442695040888963407)
		}
	}
	return true
}

// draw samples the terrain once per character cell, colored by the
// resolved tile color, with a status line across the bottom row.
func (v *viewer) draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	if w == 0 || h == 0 {
		return
	}
	mapH := h - 1

	bounds := hexgrid.ComputeBounds(v.tiles, v.cfg.World.HexSize)
	void := tcell.StyleDefault.Background(tcell.NewRGBColor(12, 16, 24))

	// An empty world still renders: every cell is void. The default
	// bounds box would otherwise admit queries into an empty tile list.
	empty := len(v.tiles) == 0

	for row := 0; row < mapH; row++ {
		for col := 0; col < w; col++ {
			wx := v.camX + float64(col-w/2)*sampleStepX*v.cfg.World.HexSize
			wz := v.camZ + float64(row-mapH/2)*sampleStepY*v.cfg.World.HexSize

			if empty || wx < bounds.MinX || wx > bounds.MaxX || wz < bounds.MinY || wz > bounds.MaxY {
				screen.SetContent(col, row, ' ', nil, void)
				continue
			}

			tile := v.tiles[ground.NearestTileIndex(v.tiles, wx, wz)]
			c := tile.Color
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			screen.SetContent(col, row, ' ', nil, style)
		}
	}

	// Center marker over whatever tile is panned under it.
	center := tcell.StyleDefault.
		Background(tcell.NewRGBColor(240, 240, 240)).
		Foreground(tcell.NewRGBColor(20, 20, 20))
	screen.SetContent(w/2, mapH/2, '+', nil, center)

	v.drawStatus(screen, w, h)
	screen.Show()
}

func (v *viewer) drawStatus(screen tcell.Screen, w, h int) {
	biome := "void"
	if len(v.tiles) > 0 {
		tile := v.tiles[ground.NearestTileIndex(v.tiles, v.camX, v.camZ)]
		biome = tile.Terrain.Biome.String()
	}

	status := fmt.Sprintf(" seed %d  pos %.0f,%.0f  %s | arrows/wasd pan  r reseed  q quit ",
		v.seed, v.camX, v.camZ, biome)

	style := tcell.StyleDefault.
		Background(tcell.NewRGBColor(30, 34, 40)).
		Foreground(tcell.NewRGBColor(220, 224, 228))

	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		screen.SetContent(col, h-1, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		screen.SetContent(col, h-1, ' ', nil, style)
	}
}
