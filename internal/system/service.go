package system

import (
	"fmt"
	"log/slog"
	"math"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/prng"
	"starforge-server/internal/seed"
	"starforge-server/internal/terrain"
)

// Orbital spacing: each body's radius multiplies outward from the previous
// one by a factor in [spacingMin, spacingMax], so radii are strictly
// monotonic for every generated system.
const (
	innerOffsetMin = 0.25
	innerOffsetMax = 0.55
	spacingMin     = 1.4
	spacingMax     = 2.2
)

// stellar physical parameters per spectral class, Sol-relative.
var stellar = map[galaxy.SpectralClass]struct {
	luminosity float64
	mass       float64
}{
	galaxy.ClassO: {30000, 16},
	galaxy.ClassB: {1000, 6},
	galaxy.ClassA: {20, 2},
	galaxy.ClassF: {3, 1.3},
	galaxy.ClassG: {1, 1},
	galaxy.ClassK: {0.3, 0.7},
	galaxy.ClassM: {0.04, 0.3},
}

// orbitZone partitions the system plane relative to the habitable zone and
// frost line.
type orbitZone int

const (
	zoneHotInner orbitZone = iota
	zoneInnerHabitable
	zoneGoldilocks
	zoneOuterHabitable
	zoneColdOuter
)

// planetTypeOrder fixes the index meaning of every zone weight vector.
var planetTypeOrder = []terrain.PlanetType{
	terrain.PlanetTemperate,
	terrain.PlanetDesert,
	terrain.PlanetOcean,
	terrain.PlanetIce,
	terrain.PlanetVolcanic,
	terrain.PlanetBarren,
	terrain.PlanetGasGiant,
}

// zoneWeights biases planet types by orbital zone: molten rocks sunward,
// living worlds in the goldilocks band, ice and gas giants past the frost
// line.
var zoneWeights = map[orbitZone][]float64{
	zoneHotInner:       {0, 15, 0, 0, 35, 48, 2},
	zoneInnerHabitable: {8, 35, 5, 0, 15, 32, 5},
	zoneGoldilocks:     {35, 20, 20, 2, 3, 15, 5},
	zoneOuterHabitable: {10, 10, 15, 20, 2, 28, 15},
	zoneColdOuter:      {0, 0, 2, 30, 1, 12, 55},
}

// physical roll ranges per planet type (Earth-relative radius and density
// factor; mass follows from both).
var physical = map[terrain.PlanetType]struct {
	radiusMin, radiusMax   float64
	densityMin, densityMax float64
}{
	terrain.PlanetTemperate: {0.7, 1.4, 0.85, 1.1},
	terrain.PlanetDesert:    {0.5, 1.2, 0.8, 1.05},
	terrain.PlanetOcean:     {0.8, 1.6, 0.75, 1.0},
	terrain.PlanetIce:       {0.4, 1.3, 0.6, 0.9},
	terrain.PlanetVolcanic:  {0.5, 1.1, 0.95, 1.25},
	terrain.PlanetBarren:    {0.3, 0.9, 0.7, 1.0},
	terrain.PlanetGasGiant:  {3.5, 11.0, 0.15, 0.35},
}

// population tiers gated by a habitability score.
var popTiers = []struct {
	minScore float64
	maxPop   int64
	maxTech  int
}{
	{0.85, 4_000_000_000, 10},
	{0.65, 400_000_000, 8},
	{0.45, 20_000_000, 7},
	{0.25, 500_000, 5},
	{0.10, 10_000, 4},
}

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")
	return &Service{logger: logger}
}

// GenerateSystem builds the orbital layout for a star in a sector. The star
// may be passed in when the caller already has the sector catalog; a nil
// star is regenerated from coordinates.
func (s *Service) GenerateSystem(rootSeed int64, sx, sy, sz, starIndex int, star *galaxy.Star) *System {
	logger := s.logger.With("component", "system_service", "operation", "generate_system",
		"sector", fmt.Sprintf("(%d,%d,%d)", sx, sy, sz), "star_index", starIndex)

	if star == nil {
		sec := galaxy.Generate(rootSeed, sx, sy, sz)
		if starIndex < 0 || starIndex >= len(sec.Stars) {
			logger.Warn("Star index out of range", "stars", len(sec.Stars))
			return nil
		}
		star = &sec.Stars[starIndex]
	}

	galaxySeed := seed.ForGalaxy(rootSeed)
	sectorSeed := seed.ForSector(galaxySeed, sx, sy, sz)
	sys := Generate(sectorSeed, starIndex, *star)
	logger.Debug("System generated", "bodies", len(sys.Bodies), "belts", len(sys.Belts))
	return sys
}

// Generate is the pure system generator keyed by the sector seed and star
// index.
func Generate(sectorSeed int64, starIndex int, star galaxy.Star) *System {
	systemSeed := seed.ForSystem(sectorSeed, starIndex)
	rng := prng.New(systemSeed)

	phys := stellar[star.Class]
	if phys.luminosity == 0 {
		phys = stellar[galaxy.ClassG]
	}
	sqrtLum := math.Sqrt(phys.luminosity)
	hzIn := sqrtLum * 0.95
	hzOut := sqrtLum * 1.37
	frost := sqrtLum * 4.85

	sys := &System{
		Seed:           systemSeed,
		Star:           star,
		HabitableInAU:  hzIn,
		HabitableOutAU: hzOut,
		FrostLineAU:    frost,
	}

	orbit := sqrtLum * rng.FloatRange(innerOffsetMin, innerOffsetMax)
	for i := 0; i < star.PlanetCount; i++ {
		body := generateBody(systemSeed, i, star, orbit, hzIn, hzOut, frost, phys.mass, rng)
		sys.Bodies = append(sys.Bodies, body)
		orbit *= rng.FloatRange(spacingMin, spacingMax)
	}

	// Belts favor the frost-line neighborhood where accretion failed.
	beltCount := rng.WeightedIndex([]float64{55, 35, 10})
	for b := 0; b < beltCount; b++ {
		sys.Belts = append(sys.Belts, Belt{
			OrbitAU: frost * rng.FloatRange(0.5, 1.5),
			WidthAU: rng.FloatRange(0.1, 0.8),
			Density: rng.Float64(),
		})
	}

	return sys
}

func generateBody(systemSeed int64, index int, star galaxy.Star, orbit, hzIn, hzOut, frost, starMass float64, rng *prng.Stream) OrbitalBody {
	planetSeed := seed.ForPlanet(systemSeed, index)

	zone := classifyZone(orbit, hzIn, hzOut, frost)
	ptype := planetTypeOrder[rng.WeightedIndex(zoneWeights[zone])]

	p := physical[ptype]
	radius := rng.FloatRange(p.radiusMin, p.radiusMax)
	density := rng.FloatRange(p.densityMin, p.densityMax)
	mass := density * radius * radius * radius
	gravity := mass / (radius * radius) // surface g, inverse-square in radius

	body := OrbitalBody{
		Index:        index,
		Name:         bodyName(star.Name, index),
		Seed:         planetSeed,
		Type:         ptype,
		OrbitAU:      orbit,
		RadiusEarths: radius,
		MassEarths:   mass,
		GravityG:     gravity,
		PeriodDays:   365.25 * math.Sqrt(orbit*orbit*orbit/starMass), // simplified Kepler
	}

	body.Moons = generateMoons(rng, ptype, star.Name, index)

	if score := habitability(ptype, zone, gravity); score > 0 {
		tierIdx := -1
		for ti, tier := range popTiers {
			if score >= tier.minScore {
				tierIdx = ti
				break
			}
		}
		if tierIdx >= 0 && rng.Chance(score) {
			tier := popTiers[tierIdx]
			body.Population = int64(rng.Float64() * float64(tier.maxPop))
			body.TechLevel = rng.IntRange(1, tier.maxTech)
		}
	}

	return body
}

func classifyZone(orbit, hzIn, hzOut, frost float64) orbitZone {
	switch {
	case orbit < hzIn*0.5:
		return zoneHotInner
	case orbit < hzIn:
		return zoneInnerHabitable
	case orbit <= hzOut:
		return zoneGoldilocks
	case orbit <= frost:
		return zoneOuterHabitable
	default:
		return zoneColdOuter
	}
}

// habitability scores a body in [0,1]; only breathable archetypes in
// reasonable gravity near the goldilocks band score at all.
func habitability(ptype terrain.PlanetType, zone orbitZone, gravity float64) float64 {
	base := 0.0
	switch ptype {
	case terrain.PlanetTemperate:
		base = 0.9
	case terrain.PlanetOcean:
		base = 0.7
	case terrain.PlanetDesert:
		base = 0.4
	case terrain.PlanetIce:
		base = 0.15
	default:
		return 0
	}
	switch zone {
	case zoneGoldilocks:
		// full score
	case zoneInnerHabitable, zoneOuterHabitable:
		base *= 0.5
	default:
		base *= 0.1
	}
	if gravity < 0.3 || gravity > 2.0 {
		base *= 0.3
	}
	return base
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

func bodyName(starName string, index int) string {
	if index < len(romanNumerals) {
		return starName + " " + romanNumerals[index]
	}
	return fmt.Sprintf("%s %d", starName, index+1)
}

func generateMoons(rng *prng.Stream, ptype terrain.PlanetType, starName string, bodyIndex int) []Moon {
	max := 2
	if ptype == terrain.PlanetGasGiant {
		max = 12
	}
	count := rng.IntRange(0, max)
	if count == 0 {
		return nil
	}
	moons := make([]Moon, count)
	orbit := rng.FloatRange(2.5, 5)
	for i := range moons {
		moons[i] = Moon{
			Index:        i,
			Name:         fmt.Sprintf("%s %s%c", starName, romanNumerals[bodyIndex%len(romanNumerals)], 'a'+byte(i)),
			RadiusEarths: rng.FloatRange(0.05, 0.4),
			OrbitRadii:   orbit,
		}
		orbit *= rng.FloatRange(1.3, 1.9)
	}
	return moons
}
