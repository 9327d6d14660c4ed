package terrain

import (
	"starforge-server/internal/prng"
)

// PlanetType is the closed set of surface archetypes the terrain core knows
// how to synthesize. Gas giants have no solid surface and are rejected by
// the caller before tile generation.
type PlanetType string

const (
	PlanetTemperate PlanetType = "temperate"
	PlanetDesert    PlanetType = "desert"
	PlanetOcean     PlanetType = "ocean"
	PlanetIce       PlanetType = "ice"
	PlanetVolcanic  PlanetType = "volcanic"
	PlanetBarren    PlanetType = "barren"
	PlanetGasGiant  PlanetType = "gas_giant"
)

// SurfaceTypes lists every archetype that produces terrain.
var SurfaceTypes = []PlanetType{
	PlanetTemperate, PlanetDesert, PlanetOcean,
	PlanetIce, PlanetVolcanic, PlanetBarren,
}

// archetype holds the per-type roll ranges consumed by NewConfig. A fixed
// table keyed by a closed enum replaces the loose per-type stat maps of the
// original design, so a missing key is a compile-time impossibility.
type archetype struct {
	seaLevelMin, seaLevelMax     float64
	mountainMin, mountainMax     float64
	tempBaseMin, tempBaseMax     float64 // degrees C offset applied to the latitude curve
	waterMin, waterMax           float64
	roughnessMin, roughnessMax   float64
	contScaleMin, contScaleMax   float64
	heightMultMin, heightMultMax float64
	erosionMin, erosionMax       float64
}

var archetypes = map[PlanetType]archetype{
	PlanetTemperate: {0.34, 0.42, 0.70, 0.80, -6, 4, 0.45, 0.65, 0.8, 1.2, 0.9, 1.4, 0.9, 1.2, 0.4, 0.8},
	PlanetDesert:    {0.12, 0.22, 0.68, 0.78, 8, 18, 0.02, 0.12, 1.0, 1.5, 0.8, 1.2, 0.9, 1.3, 0.7, 1.0},
	PlanetOcean:     {0.55, 0.68, 0.82, 0.90, -2, 8, 0.75, 0.95, 0.6, 1.0, 1.1, 1.6, 0.8, 1.0, 0.3, 0.6},
	PlanetIce:       {0.30, 0.40, 0.68, 0.78, -42, -25, 0.35, 0.60, 0.7, 1.1, 0.9, 1.3, 0.8, 1.1, 0.2, 0.5},
	PlanetVolcanic:  {0.18, 0.28, 0.60, 0.72, 15, 30, 0.05, 0.20, 1.2, 1.8, 0.7, 1.1, 1.1, 1.5, 0.2, 0.5},
	PlanetBarren:    {0.05, 0.12, 0.72, 0.82, -15, 0, 0.0, 0.03, 0.9, 1.4, 0.8, 1.3, 0.9, 1.3, 0.1, 0.3},
}

// Config is the immutable per-planet terrain parameter set. It is derived
// once from the planet seed and read by every tile generation for that
// planet; copies are cheap and safe to share across goroutines.
type Config struct {
	Seed              int64
	Type              PlanetType
	SeaLevel          float64
	MountainThreshold float64
	TemperatureBase   float64
	WaterCoverage     float64
	Roughness         float64
	ContinentalScale  float64
	HeightMultiplier  float64
	ErosionStrength   float64
}

// DetailOverride carries climate-derived fields from a richer planet-detail
// pass. Nil fields leave the rolled value in place.
type DetailOverride struct {
	TemperatureBase *float64
	WaterCoverage   *float64
}

// NewConfig rolls a terrain configuration from the planet seed and archetype.
// Unknown or gas-giant types fall back to the barren archetype rather than
// failing; the caller validates eligibility before asking for terrain.
func NewConfig(planetSeed int64, planetType PlanetType, override *DetailOverride) Config {
	arch, ok := archetypes[planetType]
	if !ok {
		arch = archetypes[PlanetBarren]
	}

	rng := prng.New(planetSeed)
	cfg := Config{
		Seed:              planetSeed,
		Type:              planetType,
		SeaLevel:          rng.FloatRange(arch.seaLevelMin, arch.seaLevelMax),
		MountainThreshold: rng.FloatRange(arch.mountainMin, arch.mountainMax),
		TemperatureBase:   rng.FloatRange(arch.tempBaseMin, arch.tempBaseMax),
		WaterCoverage:     rng.FloatRange(arch.waterMin, arch.waterMax),
		Roughness:         rng.FloatRange(arch.roughnessMin, arch.roughnessMax),
		ContinentalScale:  rng.FloatRange(arch.contScaleMin, arch.contScaleMax),
		HeightMultiplier:  rng.FloatRange(arch.heightMultMin, arch.heightMultMax),
		ErosionStrength:   rng.FloatRange(arch.erosionMin, arch.erosionMax),
	}

	if override != nil {
		if override.TemperatureBase != nil {
			cfg.TemperatureBase = *override.TemperatureBase
		}
		if override.WaterCoverage != nil {
			cfg.WaterCoverage = *override.WaterCoverage
		}
	}
	return cfg
}
