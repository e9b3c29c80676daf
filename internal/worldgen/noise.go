// Package worldgen produces seeded hexagonal worlds: a disc of axial
// cells with per-cell terrain attributes derived from layered simplex
// noise fields.
package worldgen

import (
	"math"
	"math/rand"
)

// skew/unskew factors for 2D simplex space.
const (
	skew2   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// Noise is a seeded 2D simplex noise source. The permutation table is
// shuffled once from the seed, so a given seed always yields the same
// field.
type Noise struct {
	perm [512]int
}

// NewNoise creates a noise source for the given seed.
func NewNoise(seed int64) *Noise {
	n := &Noise{}
	rng := rand.New(rand.NewSource(seed))

	table := make([]int, 256)
	for i := range table {
		table[i] = i
	}
	rng.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})
	for i := 0; i < 512; i++ {
		n.perm[i] = table[i&255]
	}
	return n
}

func gradient2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// At returns 2D simplex noise at (x, y) in the range [-1, 1].
func (n *Noise) At(x, y float64) float64 {
	s := (x + y) * skew2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * unskew2
	x0 := x - (i - t)
	y0 := y - (j - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := int(i) & 255
	jj := int(j) & 255

	var n0, n1, n2 float64

	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * gradient2(n.perm[ii+n.perm[jj]], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * gradient2(n.perm[ii+i1+n.perm[jj+j1]], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * gradient2(n.perm[ii+1+n.perm[jj+1]], x2, y2)
	}

	return 70 * (n0 + n1 + n2)
}

// Fractal sums octaves of simplex noise and normalizes to [0, 1].
func (n *Noise) Fractal(x, y, freq float64, octaves int, lacunarity, persistence float64) float64 {
	var total, maxAmp float64
	amp := 1.0

	for o := 0; o < octaves; o++ {
		total += n.At(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}

	return (total/maxAmp + 1) / 2
}
