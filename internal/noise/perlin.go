// Package noise implements 2D Perlin gradient noise with fractal Brownian
// motion layering. The hybrid dungeon generator uses it to erode room edges
// into organic cave-like boundaries.
package noise

import (
	"math"

	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

// Perlin is a seeded 2D gradient noise field. The permutation table is
// shuffled once at construction, so the field is a pure function of its
// inputs afterwards.
type Perlin struct {
	// 256-entry permutation doubled to 512 so lattice lookups never need a
	// wraparound branch.
	perm [512]int
}

// NewPerlin builds a noise field whose permutation table is shuffled by the
// given generator.
func NewPerlin(r *rng.SeededRandom) *Perlin {
	base := make([]int, 256)
	for i := range base {
		base[i] = i
	}
	shuffled := rng.Shuffle(r, base)

	p := &Perlin{}
	for i := 0; i < 512; i++ {
		p.perm[i] = shuffled[i&255]
	}
	return p
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad maps a lattice hash to one of four diagonal gradient directions and
// dots it with the offset vector.
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Noise2D returns gradient noise at (x, y), roughly in [-1, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)

	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	aa := p.perm[p.perm[xi]+yi]
	ab := p.perm[p.perm[xi]+yi+1]
	ba := p.perm[p.perm[xi+1]+yi]
	bb := p.perm[p.perm[xi+1]+yi+1]

	bottom := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	top := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(bottom, top, v)
}

// FBM sums octaves layers of Noise2D at geometrically increasing frequency
// and decreasing amplitude, normalized back to [-1, 1] by the total
// amplitude. Callers must pass octaves >= 1.
func (p *Perlin) FBM(x, y float64, octaves int, lacunarity, persistence float64) float64 {
	var total, amplitudeSum float64
	frequency := 1.0
	amplitude := 1.0

	for i := 0; i < octaves; i++ {
		total += p.Noise2D(x*frequency, y*frequency) * amplitude
		amplitudeSum += amplitude
		frequency *= lacunarity
		amplitude *= persistence
	}

	return total / amplitudeSum
}
