package worldgen

import (
	"testing"

	"github.com/hexfield/hexplore/internal/hexgrid"
)

func TestGenerateCellCount(t *testing.T) {
	for _, radius := range []int{0, 1, 3, 9} {
		w := Generate(42, radius)
		want := 1 + 3*radius*(radius+1)
		if len(w.Cells) != want {
			t.Errorf("radius %d: got %d cells, want %d", radius, len(w.Cells), want)
		}
		if len(w.Terrain) != len(w.Cells) {
			t.Errorf("radius %d: terrain length %d != cells length %d", radius, len(w.Terrain), len(w.Cells))
		}
	}
}

func TestGenerateCellsInsideRadius(t *testing.T) {
	const radius = 5
	w := Generate(7, radius)
	origin := hexgrid.Axial{}
	for _, c := range w.Cells {
		if d := hexgrid.Distance(origin, hexgrid.Axial{Q: c.Q, R: c.R}); d > radius {
			t.Errorf("cell (%d,%d) at distance %d, outside radius %d", c.Q, c.R, d, radius)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(1337, 9)
	b := Generate(1337, 9)
	if len(a.Cells) != len(b.Cells) {
		t.Fatalf("cell counts differ: %d vs %d", len(a.Cells), len(b.Cells))
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, a.Cells[i], b.Cells[i])
		}
		if a.Terrain[i] != b.Terrain[i] {
			t.Fatalf("terrain %d differs: %+v vs %+v", i, a.Terrain[i], b.Terrain[i])
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(1, 6)
	b := Generate(2, 6)
	same := 0
	for i := range a.Terrain {
		if a.Terrain[i].Height == b.Terrain[i].Height {
			same++
		}
	}
	if same == len(a.Terrain) {
		t.Error("different seeds produced identical height fields")
	}
}

func TestGenerateAttributeRanges(t *testing.T) {
	w := Generate(99, 8)
	for i, tr := range w.Terrain {
		if tr.Height < 0 || tr.Height > 1 {
			t.Errorf("terrain %d height %v outside [0,1]", i, tr.Height)
		}
		if tr.Heat < 0 || tr.Heat > 1 {
			t.Errorf("terrain %d heat %v outside [0,1]", i, tr.Heat)
		}
		if tr.Moisture < 0 || tr.Moisture > 1 {
			t.Errorf("terrain %d moisture %v outside [0,1]", i, tr.Moisture)
		}
	}
}

func TestShorelineBordersAreBeach(t *testing.T) {
	w := Generate(1337, 9)

	index := make(map[hexgrid.Axial]int, len(w.Cells))
	for i, c := range w.Cells {
		index[hexgrid.Axial{Q: c.Q, R: c.R}] = i
	}

	// No land cell may touch ocean directly; the shoreline pass turns
	// every such cell into beach.
	for i, c := range w.Cells {
		b := w.Terrain[i].Biome
		if b == hexgrid.BiomeOcean || b == hexgrid.BiomeBeach {
			continue
		}
		for _, nb := range (hexgrid.Axial{Q: c.Q, R: c.R}).Neighbors() {
			if j, ok := index[nb]; ok && w.Terrain[j].Biome == hexgrid.BiomeOcean {
				t.Errorf("cell (%d,%d) borders ocean but is %v", c.Q, c.R, b)
			}
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise(5)
	b := NewNoise(5)
	for _, p := range [][2]float64{{0, 0}, {1.5, -2.25}, {100, 100}} {
		if a.At(p[0], p[1]) != b.At(p[0], p[1]) {
			t.Errorf("noise at %v differs between equal seeds", p)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoise(11)
	for x := -10.0; x <= 10; x += 0.7 {
		for y := -10.0; y <= 10; y += 0.7 {
			v := n.At(x, y)
			if v < -1.001 || v > 1.001 {
				t.Fatalf("noise at (%v,%v) = %v, outside [-1,1]", x, y, v)
			}
		}
	}
}

func TestFractalRange(t *testing.T) {
	n := NewNoise(23)
	for x := -5.0; x <= 5; x += 0.9 {
		v := n.Fractal(x, -x, 0.2, 4, 2.0, 0.5)
		if v < 0 || v > 1 {
			t.Errorf("fractal at %v = %v, outside [0,1]", x, v)
		}
	}
}
