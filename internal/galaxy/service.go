package galaxy

import (
	"fmt"
	"log/slog"
	"math"

	"starforge-server/internal/prng"
	"starforge-server/internal/seed"
)

const (
	// MinStars and MaxStars bound the star count of any sector.
	MinStars = 50
	MaxStars = 300

	// coreRadius is the sector distance over which galactic star density
	// falls off from the notional core to the rim.
	coreRadius = 64.0

	// minSeparation is the minimum pairwise distance between stars in the
	// normalized sector cube. Placement gives up on a star after
	// placementAttempts rejections; an under-filled sector is accepted.
	minSeparation     = 0.045
	placementAttempts = 32

	// nameAttempts bounds the near-duplicate rejection loop; the final
	// attempt is accepted regardless.
	nameAttempts    = 8
	nameMinDistance = 3
)

// spectralTable is the rarity-weighted catalog of star classes: hot classes
// are rare, red dwarfs dominate. Planet counts shrink for the hot classes
// and peak around the sun-like ones.
var spectralTable = []struct {
	class      SpectralClass
	weight     float64
	minPlanets int
	maxPlanets int
	dangerMin  int
	dangerMax  int
}{
	{ClassO, 0.1, 0, 2, 6, 10},
	{ClassB, 0.6, 0, 2, 5, 9},
	{ClassA, 2.0, 0, 3, 3, 8},
	{ClassF, 5.0, 1, 5, 2, 7},
	{ClassG, 10.0, 2, 8, 1, 6},
	{ClassK, 18.0, 1, 7, 1, 6},
	{ClassM, 64.3, 0, 5, 0, 5},
}

var factionTable = []struct {
	faction Faction
	weight  float64
}{
	{FactionUnaligned, 55},
	{FactionDominion, 18},
	{FactionFreeWorlds, 15},
	{FactionSyndicate, 10},
	{FactionAncients, 2},
}

// Service generates sector star catalogs.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service")
	return &Service{logger: logger}
}

// GenerateSector regenerates the star catalog for a sector cube. Calling it
// twice with the same inputs yields an identical catalog.
func (s *Service) GenerateSector(rootSeed int64, x, y, z int) Sector {
	logger := s.logger.With("component", "galaxy_service", "operation", "generate_sector", "sector", fmt.Sprintf("(%d,%d,%d)", x, y, z))
	sec := Generate(rootSeed, x, y, z)
	logger.Debug("Sector generated", "stars", len(sec.Stars))
	return sec
}

// Star returns one star of a sector by index, or nil if out of range.
func (s *Service) Star(rootSeed int64, x, y, z, index int) *Star {
	sec := Generate(rootSeed, x, y, z)
	if index < 0 || index >= len(sec.Stars) {
		return nil
	}
	star := sec.Stars[index]
	return &star
}

// Generate is the pure sector generator: (root seed, cube coords) → catalog.
func Generate(rootSeed int64, x, y, z int) Sector {
	galaxySeed := seed.ForGalaxy(rootSeed)
	sectorSeed := seed.ForSector(galaxySeed, x, y, z)
	rng := prng.New(sectorSeed)

	target := targetStarCount(rng, x, y, z)
	stars := make([]Star, 0, target)
	positions := make([][3]float64, 0, target)
	names := make([]string, 0, target)

	for i := 0; i < target; i++ {
		pos, ok := placeStar(rng, positions)
		if !ok {
			// Separation constraint exhausted the attempt budget; the
			// sector stays under-filled rather than overlapping stars.
			break
		}
		positions = append(positions, pos)

		ti := rng.WeightedIndex(spectralWeights())
		entry := spectralTable[ti]

		name := rollName(rng, names)
		names = append(names, name)

		stars = append(stars, Star{
			Index:       len(stars),
			Name:        name,
			Class:       entry.class,
			Position:    pos,
			PlanetCount: rng.IntRange(entry.minPlanets, entry.maxPlanets),
			Faction:     factionTable[rng.WeightedIndex(factionWeights())].faction,
			Danger:      rng.IntRange(entry.dangerMin, entry.dangerMax),
		})
	}

	return Sector{X: x, Y: y, Z: z, Seed: sectorSeed, Stars: stars}
}

// targetStarCount scales the sector's star budget by a galactic density
// curve: dense near the core at the origin, sparse toward the rim.
func targetStarCount(rng *prng.Stream, x, y, z int) int {
	d := math.Sqrt(float64(x*x + y*y + z*z))
	density := 1 - d/coreRadius
	if density < 0.05 {
		density = 0.05
	}
	spread := float64(MaxStars-MinStars) * density
	return MinStars + int(spread*rng.FloatRange(0.6, 1.0))
}

func placeStar(rng *prng.Stream, placed [][3]float64) ([3]float64, bool) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		pos := [3]float64{rng.Float64(), rng.Float64(), rng.Float64()}
		if separated(pos, placed) {
			return pos, true
		}
	}
	return [3]float64{}, false
}

func separated(pos [3]float64, placed [][3]float64) bool {
	for _, other := range placed {
		dx := pos[0] - other[0]
		dy := pos[1] - other[1]
		dz := pos[2] - other[2]
		if dx*dx+dy*dy+dz*dz < minSeparation*minSeparation {
			return false
		}
	}
	return true
}

func spectralWeights() []float64 {
	w := make([]float64, len(spectralTable))
	for i, e := range spectralTable {
		w[i] = e.weight
	}
	return w
}

func factionWeights() []float64 {
	w := make([]float64, len(factionTable))
	for i, e := range factionTable {
		w[i] = e.weight
	}
	return w
}
