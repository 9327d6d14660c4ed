package terrain

import (
	"math"

	"starforge-server/internal/hash"
)

// Value noise over an integer lattice. Corner values come straight from the
// coordinate hash, so any two tiles sampling the same world position see the
// same value; this is what makes tile seams exact. Interpolation uses the
// Hermite smoothstep rather than plain bilinear blending to avoid visible
// grid-aligned creasing.

// latticeValue returns a pseudo-random value in [-1,1] for a lattice corner.
func latticeValue(seed int64, xi, yi int) float64 {
	return hash.ToFloat(hash.Combine(seed, xi, yi))*2 - 1
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// valueNoise samples 2D value noise at (x, y). Output is in [-1,1].
func valueNoise(seed int64, x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx)
	yi := int(fy)

	tx := smoothstep(x - fx)
	ty := smoothstep(y - fy)

	v00 := latticeValue(seed, xi, yi)
	v10 := latticeValue(seed, xi+1, yi)
	v01 := latticeValue(seed, xi, yi+1)
	v11 := latticeValue(seed, xi+1, yi+1)

	return lerp(ty, lerp(tx, v00, v10), lerp(tx, v01, v11))
}

// fbm sums octaves of value noise with doubling frequency and persistence-
// scaled amplitude, normalized by the amplitude total so output stays in
// [-1,1] regardless of octave count.
func fbm(seed int64, x, y float64, octaves int, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	ampSum := 0.0
	for i := 0; i < octaves; i++ {
		total += valueNoise(hash.Combine(seed, i), x*frequency, y*frequency) * amplitude
		ampSum += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / ampSum
}

// noiseLayer is one entry of the fixed height-synthesis stack.
type noiseLayer struct {
	salt        int64
	scale       float64
	octaves     int
	persistence float64
	weight      float64
}

// The ordered height layers. Erosion carries negative weight: it subtracts.
// Order and constants are frozen; they define the character of every world.
var heightLayers = []noiseLayer{
	{salt: 0x434f4e54, scale: 0.0035, octaves: 4, persistence: 0.50, weight: 1.00},  // continental
	{salt: 0x4d4f554e, scale: 0.0120, octaves: 5, persistence: 0.48, weight: 0.55},  // mountain
	{salt: 0x48494c4c, scale: 0.0450, octaves: 3, persistence: 0.50, weight: 0.25},  // hills
	{salt: 0x44544c53, scale: 0.1600, octaves: 2, persistence: 0.50, weight: 0.08},  // detail
	{salt: 0x45524f44, scale: 0.0200, octaves: 3, persistence: 0.50, weight: -0.30}, // erosion
}

const (
	layerContinental = 0
	layerMountain    = 1
	layerHills       = 2
	layerDetail      = 3
	layerErosion     = 4
)

// moistureSalt seeds the secondary low-frequency field used for biome
// moisture bands.
const moistureSalt int64 = 0x4d4f4953

// sampleHeight evaluates the full layer stack at a world position and
// returns a normalized height in [0,1].
func sampleHeight(cfg Config, wx, wy float64) float64 {
	sum := 0.0
	weightSum := 0.0
	for i, layer := range heightLayers {
		w := layer.weight
		scale := layer.scale
		switch i {
		case layerContinental:
			scale /= cfg.ContinentalScale
		case layerHills, layerDetail:
			w *= cfg.Roughness
		case layerErosion:
			w *= cfg.ErosionStrength
		}
		n := fbm(hash.Combine(cfg.Seed, layer.salt), wx*scale, wy*scale, layer.octaves, layer.persistence)
		sum += n * w
		weightSum += math.Abs(w)
	}

	h := sum / weightSum // [-1,1]
	h = (h + 1) / 2
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}
	if cfg.HeightMultiplier > 0 && cfg.HeightMultiplier != 1 {
		h = math.Pow(h, 1/cfg.HeightMultiplier)
	}
	return h
}

// sampleMoisture evaluates the moisture field at a world position, nudged by
// the planet's overall water coverage. Output is clamped to [0,1].
func sampleMoisture(cfg Config, wx, wy float64) float64 {
	n := fbm(hash.Combine(cfg.Seed, moistureSalt), wx*0.004, wy*0.004, 3, 0.5)
	m := (n+1)/2*0.8 + cfg.WaterCoverage*0.4
	if m < 0 {
		m = 0
	} else if m > 1 {
		m = 1
	}
	return m
}
