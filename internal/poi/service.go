package poi

import (
	"log/slog"
	"math"

	"starforge-server/internal/prng"
	"starforge-server/internal/seed"
	"starforge-server/internal/terrain"
)

const (
	// Placement searches an annulus that widens with each POI index, so
	// later POIs land farther from the landing origin.
	baseSearchRadius  = 120.0
	radiusPerIndex    = 90.0
	placementAttempts = 24
	fallbackSpacing   = 150.0
	fallbackScanSteps = 32
	artifactMaxOffset = 6.0
)

// poiCountBands: how many POIs a planet rolls, by surface archetype.
var poiCountBands = map[terrain.PlanetType][2]int{
	terrain.PlanetTemperate: {2, 6},
	terrain.PlanetDesert:    {1, 5},
	terrain.PlanetOcean:     {0, 3},
	terrain.PlanetIce:       {1, 4},
	terrain.PlanetVolcanic:  {1, 4},
	terrain.PlanetBarren:    {0, 3},
}

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing poi service")
	return &Service{logger: logger}
}

// GeneratePlanetPOIs places the surface points of interest for one planet.
func (s *Service) GeneratePlanetPOIs(planetSeed int64, planetType terrain.PlanetType, cfg terrain.Config) []POI {
	logger := s.logger.With("component", "poi_service", "operation", "generate_pois", "planet_seed", planetSeed, "planet_type", string(planetType))
	pois := Generate(planetSeed, planetType, cfg)
	logger.Debug("POIs generated", "count", len(pois))
	return pois
}

// Generate is the pure POI generator. Gas giants have no surface and yield
// nothing. Each POI draws from its own derived stream, so reordering or
// skipping one can never perturb its siblings.
func Generate(planetSeed int64, planetType terrain.PlanetType, cfg terrain.Config) []POI {
	band, ok := poiCountBands[planetType]
	if !ok {
		return nil
	}

	countRng := prng.New(seed.ForPOI(planetSeed, -1))
	count := countRng.IntRange(band[0], band[1])

	pois := make([]POI, 0, count)
	for i := 0; i < count; i++ {
		pois = append(pois, generateOne(planetSeed, i, cfg))
	}
	return pois
}

func generateOne(planetSeed int64, index int, cfg terrain.Config) POI {
	poiSeed := seed.ForPOI(planetSeed, index)
	rng := prng.New(poiSeed)

	t := AllTypes[rng.WeightedIndex(typeWeights())]
	entry := catalog[t]

	wx, wy := placePOI(rng, cfg, index)

	artifactAngle := rng.FloatRange(0, 2*math.Pi)
	artifactDist := rng.FloatRange(1, artifactMaxOffset)

	return POI{
		Index:    index,
		Seed:     poiSeed,
		Type:     t,
		WorldX:   wx,
		WorldY:   wy,
		Size:     rng.FloatRange(entry.minSize, entry.maxSize),
		Rotation: rng.FloatRange(0, 2*math.Pi),
		Artifact: Artifact{
			Name:      entry.prefixes[rng.Pick(len(entry.prefixes))] + " " + entry.suffixes[rng.Pick(len(entry.suffixes))],
			RelativeX: math.Cos(artifactAngle) * artifactDist,
			RelativeY: math.Sin(artifactAngle) * artifactDist,
		},
	}
}

// placePOI polar-rejection-samples a dry position: candidates below sea
// level are rejected against the actually sampled terrain height. After the
// attempt budget the POI falls back to a deterministic scan, so placement is
// total even on worlds that are almost entirely ocean.
func placePOI(rng *prng.Stream, cfg terrain.Config, index int) (float64, float64) {
	radius := baseSearchRadius + float64(index)*radiusPerIndex
	for attempt := 0; attempt < placementAttempts; attempt++ {
		angle := rng.FloatRange(0, 2*math.Pi)
		dist := rng.FloatRange(0.2, 1) * radius
		wx := math.Cos(angle) * dist
		wy := math.Sin(angle) * dist
		if terrain.HeightAt(cfg, wx, wy) > cfg.SeaLevel {
			return wx, wy
		}
	}
	return fallbackPosition(cfg, index)
}

// fallbackPosition walks +X from an index-spaced anchor in fixed strides,
// taking the first dry sample. The walk is bounded; if every stride is
// underwater the final anchor is used as-is, keeping placement total.
func fallbackPosition(cfg terrain.Config, index int) (float64, float64) {
	wx := float64(index+1) * fallbackSpacing
	for step := 0; step < fallbackScanSteps; step++ {
		if terrain.HeightAt(cfg, wx, 0) > cfg.SeaLevel {
			return wx, 0
		}
		wx += fallbackSpacing
	}
	return wx, 0
}

func typeWeights() []float64 {
	w := make([]float64, len(AllTypes))
	for i, t := range AllTypes {
		w[i] = catalog[t].weight
	}
	return w
}
