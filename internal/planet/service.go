package planet

import (
	"log/slog"

	"starforge-server/internal/poi"
	"starforge-server/internal/prng"
	"starforge-server/internal/seed"
	"starforge-server/internal/terrain"
)

// Per-archetype survey tables. Closed maps keyed by the planet-type enum;
// every surface type has an entry, checked by tests.
var atmosphereTable = map[terrain.PlanetType][]struct {
	atmo   Atmosphere
	weight float64
}{
	terrain.PlanetTemperate: {{AtmosphereBreathable, 60}, {AtmosphereThin, 20}, {AtmosphereDense, 20}},
	terrain.PlanetDesert:    {{AtmosphereThin, 45}, {AtmosphereBreathable, 25}, {AtmosphereToxic, 30}},
	terrain.PlanetOcean:     {{AtmosphereBreathable, 50}, {AtmosphereDense, 35}, {AtmosphereThin, 15}},
	terrain.PlanetIce:       {{AtmosphereThin, 50}, {AtmosphereNone, 30}, {AtmosphereBreathable, 20}},
	terrain.PlanetVolcanic:  {{AtmosphereToxic, 45}, {AtmosphereCorrosive, 35}, {AtmosphereDense, 20}},
	terrain.PlanetBarren:    {{AtmosphereNone, 70}, {AtmosphereThin, 30}},
	terrain.PlanetGasGiant:  {{AtmosphereCorrosive, 60}, {AtmosphereDense, 40}},
}

var climateTable = map[terrain.PlanetType][]struct {
	climate Climate
	weight  float64
}{
	terrain.PlanetTemperate: {{ClimateMild, 55}, {ClimateHumid, 25}, {ClimateStormy, 20}},
	terrain.PlanetDesert:    {{ClimateArid, 70}, {ClimateScorching, 30}},
	terrain.PlanetOcean:     {{ClimateHumid, 50}, {ClimateStormy, 35}, {ClimateMild, 15}},
	terrain.PlanetIce:       {{ClimateFrozen, 85}, {ClimateStormy, 15}},
	terrain.PlanetVolcanic:  {{ClimateScorching, 65}, {ClimateStormy, 35}},
	terrain.PlanetBarren:    {{ClimateDead, 80}, {ClimateArid, 20}},
	terrain.PlanetGasGiant:  {{ClimateStormy, 100}},
}

// typeHazards are the correlated dangers; extraHazards roll independently.
var typeHazards = map[terrain.PlanetType][]Hazard{
	terrain.PlanetTemperate: {HazardRogueFauna, HazardSeismic},
	terrain.PlanetDesert:    {HazardSandstorms, HazardRadiation},
	terrain.PlanetOcean:     {HazardToxicSpores, HazardSeismic},
	terrain.PlanetIce:       {HazardFlashFreezes},
	terrain.PlanetVolcanic:  {HazardLavaFlows, HazardSeismic},
	terrain.PlanetBarren:    {HazardMicrometeors, HazardRadiation},
	terrain.PlanetGasGiant:  {HazardRadiation},
}

var extraHazards = []Hazard{
	HazardSeismic, HazardRadiation, HazardRogueFauna, HazardMicrometeors,
}

var typeResources = map[terrain.PlanetType][]Resource{
	terrain.PlanetTemperate: {ResourceOrganics, ResourceWaterIce},
	terrain.PlanetDesert:    {ResourceRareMetals, ResourceCrystals},
	terrain.PlanetOcean:     {ResourceWaterIce, ResourceOrganics},
	terrain.PlanetIce:       {ResourceWaterIce},
	terrain.PlanetVolcanic:  {ResourceGeothermal, ResourceRareMetals},
	terrain.PlanetBarren:    {ResourceRareMetals},
	terrain.PlanetGasGiant:  {ResourceExoticGases},
}

// rareRolls are independent low-probability finds.
var rareRolls = []struct {
	resource Resource
	chance   float64
}{
	{ResourceForceCrystals, 0.04},
	{ResourceCrystals, 0.12},
	{ResourceExoticGases, 0.08},
}

var flavorLines = map[terrain.PlanetType][]string{
	terrain.PlanetTemperate: {
		"Rolling grasslands broken by slow rivers.",
		"Dense forests hum with unseen wildlife.",
		"Morning fog pools in the lowland valleys.",
	},
	terrain.PlanetDesert: {
		"Dunes run unbroken to the horizon.",
		"Wind-carved mesas cast long shadows at dusk.",
		"Salt flats glitter under the twin noons.",
	},
	terrain.PlanetOcean: {
		"Archipelagos freckle a world-spanning sea.",
		"Storm fronts chase each other across open water.",
		"Bioluminescent tides glow along the shallows.",
	},
	terrain.PlanetIce: {
		"Glaciers groan under a pale, distant sun.",
		"Frozen seas crack into cathedral ridges.",
		"Auroras sheet across the polar dark.",
	},
	terrain.PlanetVolcanic: {
		"Rivers of magma vein the blackened crust.",
		"Ash plumes smear the sky a bruised orange.",
		"The ground trembles on a slow heartbeat.",
	},
	terrain.PlanetBarren: {
		"Craters stretch in silence to the horizon.",
		"Regolith lies undisturbed since the world cooled.",
		"Nothing moves but the terminator line.",
	},
	terrain.PlanetGasGiant: {
		"Cloud bands churn in centuries-old storms.",
		"A great pale eye stares from the southern tropics.",
	},
}

const (
	extraHazardChance = 0.15
	maxHazards        = 3
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")
	return &Service{logger: logger}
}

// GenerateDetail derives the rich planet description for a planet seed.
func (s *Service) GenerateDetail(planetSeed int64, planetType terrain.PlanetType) *Detail {
	logger := s.logger.With("component", "planet_service", "operation", "generate_detail", "planet_seed", planetSeed, "planet_type", string(planetType))
	d := GenerateDetail(planetSeed, planetType)
	logger.Debug("Planet detail generated", "hazards", len(d.Hazards), "resources", len(d.Resources))
	return d
}

// GenerateDetail is the pure detail generator: same seed and type, same
// survey, always. The detail stream is derived from the planet seed with an
// item-layer salt so it can never correlate with terrain or POI streams.
func GenerateDetail(planetSeed int64, planetType terrain.PlanetType) *Detail {
	rng := prng.New(seed.ForItem(planetSeed, 0))

	d := &Detail{Seed: planetSeed}

	atmoRows := atmosphereTable[planetType]
	d.Atmosphere = atmoRows[rng.WeightedIndex(weightsOfAtmosphere(atmoRows))].atmo

	climRows := climateTable[planetType]
	d.Climate = climRows[rng.WeightedIndex(weightsOfClimate(climRows))].climate

	// Correlated hazards first, then independent extras, capped.
	for _, h := range typeHazards[planetType] {
		if rng.Chance(0.5) {
			d.Hazards = append(d.Hazards, h)
		}
	}
	for _, h := range extraHazards {
		if len(d.Hazards) >= maxHazards {
			break
		}
		if !containsHazard(d.Hazards, h) && rng.Chance(extraHazardChance) {
			d.Hazards = append(d.Hazards, h)
		}
	}

	// Common metals are always present; everything else is rolled.
	d.Resources = append(d.Resources, ResourceCommonMetals)
	for _, r := range typeResources[planetType] {
		if rng.Chance(0.65) && !d.HasResource(r) {
			d.Resources = append(d.Resources, r)
		}
	}
	for _, rare := range rareRolls {
		if rng.Chance(rare.chance) && !d.HasResource(rare.resource) {
			d.Resources = append(d.Resources, rare.resource)
		}
	}

	d.EligiblePOIs = eligiblePOIs(planetType, d)

	lines := flavorLines[planetType]
	if len(lines) > 0 {
		d.Flavor = lines[rng.Pick(len(lines))]
	}

	return d
}

// eligiblePOIs applies the conditional rules that open POI archetypes to a
// world: caves everywhere solid, mines where metals run rich, temples only
// where force crystals surface, monuments in the rare quiet of dead worlds.
func eligiblePOIs(planetType terrain.PlanetType, d *Detail) []poi.Type {
	if planetType == terrain.PlanetGasGiant {
		return nil
	}

	eligible := []poi.Type{poi.TypeCaveSystem, poi.TypeCrashedShip}

	if d.HasResource(ResourceRareMetals) || d.HasResource(ResourceCommonMetals) {
		eligible = append(eligible, poi.TypeAbandonedMine)
	}
	if d.Atmosphere == AtmosphereBreathable || d.Atmosphere == AtmosphereThin {
		eligible = append(eligible, poi.TypeRuins)
	}
	if d.Climate != ClimateScorching {
		eligible = append(eligible, poi.TypeResearchStation)
	}
	if d.HasResource(ResourceForceCrystals) {
		eligible = append(eligible, poi.TypeTemple)
	}
	if d.Climate == ClimateDead || d.HasResource(ResourceForceCrystals) {
		eligible = append(eligible, poi.TypeAncientMonument)
	}
	return eligible
}

func weightsOfAtmosphere(rows []struct {
	atmo   Atmosphere
	weight float64
}) []float64 {
	w := make([]float64, len(rows))
	for i, r := range rows {
		w[i] = r.weight
	}
	return w
}

func weightsOfClimate(rows []struct {
	climate Climate
	weight  float64
}) []float64 {
	w := make([]float64, len(rows))
	for i, r := range rows {
		w[i] = r.weight
	}
	return w
}

func containsHazard(hs []Hazard, h Hazard) bool {
	for _, have := range hs {
		if have == h {
			return true
		}
	}
	return false
}
