package terrain

import "math"

// Biome identifies the surface classification of a sample.
type Biome uint8

const (
	BiomeFrozenOcean Biome = iota
	BiomeDeepOcean
	BiomeShallowOcean
	BiomeBeach
	BiomeMountain
	BiomeSnowPeak
	BiomeVolcanic
	BiomeDesert
	BiomeGrassland
	BiomeForest
	BiomeJungle
	BiomeSwamp
	BiomeTundra
	BiomeSnow
)

var biomeNames = [...]string{
	"frozen_ocean", "deep_ocean", "shallow_ocean", "beach",
	"mountain", "snow_peak", "volcanic",
	"desert", "grassland", "forest", "jungle", "swamp", "tundra", "snow",
}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

// Classification thresholds. These were tuned for world character, not
// derived; they are pinned by tests and must not drift.
const (
	deepOceanDepth   = 0.12 // below sea level
	beachBand        = 0.015
	frozenOceanTemp  = -10.0
	snowPeakTemp     = 0.0
	snowTemp         = -10.0
	tundraTemp       = 0.0
	hotTemp          = 28.0
	warmTemp         = 12.0
	desertMoistHot   = 0.30
	grassMoistHot    = 0.55
	desertMoistWarm  = 0.25
	grassMoistWarm   = 0.50
	forestMoistWarm  = 0.80
	grassMoistCool   = 0.35
	volcanicRockBand = 0.10 // below mountain threshold

	// planetCircumference is the world-Y wrap distance used by the flat
	// latitude proxy. A sphere mapping may replace this someday; until then
	// the approximation is load-bearing and intentional.
	planetCircumference = 4096.0

	equatorWarmth   = 28.0
	latitudeCooling = 0.75
	altitudeCooling = 35.0
)

// latitudeAt maps world Y to a latitude in [-90,90] by folding the linear
// coordinate around the planet circumference (triangle wave). This is a
// flat-world proxy for a sphere, kept deliberately simple.
func latitudeAt(wy float64) float64 {
	deg := math.Mod(wy/planetCircumference*360, 360)
	if deg < 0 {
		deg += 360
	}
	switch {
	case deg <= 90:
		return deg
	case deg <= 270:
		return 180 - deg
	default:
		return deg - 360
	}
}

// temperatureAt returns the surface temperature in degrees C for a world
// position and normalized height: warm at the equator, cooling with latitude
// and with altitude above sea level.
func temperatureAt(cfg Config, wy, height float64) float64 {
	t := cfg.TemperatureBase + equatorWarmth - math.Abs(latitudeAt(wy))*latitudeCooling
	if above := height - cfg.SeaLevel; above > 0 {
		t -= above * altitudeCooling
	}
	return t
}

// classify is the deterministic biome decision procedure: water bands first,
// then mountain/volcanic overrides, then the temperature×moisture table.
func classify(cfg Config, height, temp, moisture float64) Biome {
	if height < cfg.SeaLevel {
		switch {
		case temp < frozenOceanTemp:
			return BiomeFrozenOcean
		case height < cfg.SeaLevel-deepOceanDepth:
			return BiomeDeepOcean
		default:
			return BiomeShallowOcean
		}
	}

	if height < cfg.SeaLevel+beachBand {
		return BiomeBeach
	}

	if cfg.Type == PlanetVolcanic && height > cfg.MountainThreshold-volcanicRockBand {
		return BiomeVolcanic
	}

	if height > cfg.MountainThreshold {
		if temp < snowPeakTemp {
			return BiomeSnowPeak
		}
		return BiomeMountain
	}

	switch {
	case temp < snowTemp:
		return BiomeSnow
	case temp < tundraTemp:
		return BiomeTundra
	case temp > hotTemp:
		switch {
		case moisture < desertMoistHot:
			return BiomeDesert
		case moisture < grassMoistHot:
			return BiomeGrassland
		default:
			return BiomeJungle
		}
	case temp > warmTemp:
		switch {
		case moisture < desertMoistWarm:
			return BiomeDesert
		case moisture < grassMoistWarm:
			return BiomeGrassland
		case moisture < forestMoistWarm:
			return BiomeForest
		default:
			return BiomeSwamp
		}
	default:
		if moisture < grassMoistCool {
			return BiomeGrassland
		}
		return BiomeForest
	}
}

// biomeAt classifies a world position by sampling height, temperature and
// moisture there.
func biomeAt(cfg Config, wx, wy float64) Biome {
	h := sampleHeight(cfg, wx, wy)
	return classify(cfg, h, temperatureAt(cfg, wy, h), sampleMoisture(cfg, wx, wy))
}

// IsWater reports whether the biome is an ocean band.
func (b Biome) IsWater() bool {
	return b == BiomeFrozenOcean || b == BiomeDeepOcean || b == BiomeShallowOcean
}
