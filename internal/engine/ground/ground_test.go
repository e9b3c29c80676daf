package ground

import (
	"testing"

	"github.com/hexfield/hexplore/internal/hexgrid"
)

func TestNearestTileIndexEmpty(t *testing.T) {
	if got := NearestTileIndex(nil, 3, 4); got != 0 {
		t.Errorf("NearestTileIndex(empty) = %d, want 0", got)
	}
}

func TestNearestTileIndex(t *testing.T) {
	tiles := []hexgrid.Tile{
		{X: 0, Y: 0},
		{X: 100, Y: 100},
	}
	if got := NearestTileIndex(tiles, 1, 1); got != 0 {
		t.Errorf("query (1,1) = index %d, want 0", got)
	}
	if got := NearestTileIndex(tiles, 99, 98); got != 1 {
		t.Errorf("query (99,98) = index %d, want 1", got)
	}
}

func TestNearestTileIndexTieLowestWins(t *testing.T) {
	tiles := []hexgrid.Tile{
		{X: -1, Y: 0},
		{X: 1, Y: 0},
	}
	if got := NearestTileIndex(tiles, 0, 0); got != 0 {
		t.Errorf("tie = index %d, want 0 (first encountered)", got)
	}
}

func TestSampleHeight(t *testing.T) {
	tiles := []hexgrid.Tile{
		{X: 0, Y: 0, Terrain: hexgrid.Terrain{Height: 0.5}},
		{X: 50, Y: 0, Terrain: hexgrid.Terrain{Height: 1.0}},
	}
	got := SampleHeight(tiles, 2, 2)
	want := 0.5 * hexgrid.HeightScale
	if got != want {
		t.Errorf("SampleHeight near tile 0 = %v, want %v", got, want)
	}

	got = SampleHeight(tiles, 49, 1)
	want = 1.0 * hexgrid.HeightScale
	if got != want {
		t.Errorf("SampleHeight near tile 1 = %v, want %v", got, want)
	}
}

func TestSampleHeightEmpty(t *testing.T) {
	if got := SampleHeight(nil, 0, 0); got != 0 {
		t.Errorf("SampleHeight(empty) = %v, want 0", got)
	}
}
