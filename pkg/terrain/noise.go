package terrain

import (
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
)

// fbmLayer wraps a go-perlin sampler configured for one fractal-Brownian-
// motion field. go-perlin's own alpha/beta/n parameters already perform the
// persistence/lacunarity/octave summation internally (alpha ~ persistence,
// beta ~ lacunarity, n ~ octave count); this layer only adds the frequency
// scale spec.md's generator names on top, matching
// SoftbearStudios-mk48/server/terrain/noise/noise.go's
// `g.landHi.Noise2D(x*frequency, y*frequency)` usage of the same library.
type fbmLayer struct {
	perlin    *perlin.Perlin
	frequency float64
}

func newFBMLayer(seed int64, frequency, persistence, lacunarity float64, octaves int32) fbmLayer {
	return fbmLayer{
		perlin:    perlin.NewPerlin(persistence, lacunarity, octaves, seed),
		frequency: frequency,
	}
}

// sample returns a value nominally in [-1, 1].
func (f fbmLayer) sample(x, z float64) float64 {
	return f.perlin.Noise2D(x*f.frequency, z*f.frequency)
}

// blend mixes a and b using c as the control signal, matching the Rust
// `noise` crate's Blend combinator: result = lerp(a, b, (c+1)/2).
func blend(a, b, c float64) float64 {
	t := (c + 1) / 2
	return a*(1-t) + b*t
}

// exponent raises the magnitude of v (nominally in [-1,1]) to exp while
// preserving sign, matching the Rust `noise` crate's Exponent combinator.
func exponent(v float64, exp float64) float64 {
	sign := float32(1)
	if v < 0 {
		sign = -1
	}
	mag := math32.Pow(math32.Abs(float32(v)), float32(exp))
	return float64(sign * mag)
}

// unitInterval remaps a value nominally in [-1,1] to [0,1], clamped.
func unitInterval(v float64) float64 {
	u := (v + 1) / 2
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}
