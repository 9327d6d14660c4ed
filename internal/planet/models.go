package planet

import "starforge-server/internal/poi"

// Atmosphere is the breathability classification of a world.
type Atmosphere string

const (
	AtmosphereNone       Atmosphere = "none"
	AtmosphereThin       Atmosphere = "thin"
	AtmosphereBreathable Atmosphere = "breathable"
	AtmosphereDense      Atmosphere = "dense"
	AtmosphereToxic      Atmosphere = "toxic"
	AtmosphereCorrosive  Atmosphere = "corrosive"
)

// Climate is the dominant weather character.
type Climate string

const (
	ClimateMild      Climate = "mild"
	ClimateArid      Climate = "arid"
	ClimateHumid     Climate = "humid"
	ClimateFrozen    Climate = "frozen"
	ClimateScorching Climate = "scorching"
	ClimateStormy    Climate = "stormy"
	ClimateDead      Climate = "dead"
)

// Hazard is a surface danger surveyed on approach.
type Hazard string

const (
	HazardSeismic      Hazard = "seismic_activity"
	HazardRadiation    Hazard = "radiation"
	HazardSandstorms   Hazard = "sandstorms"
	HazardFlashFreezes Hazard = "flash_freezes"
	HazardLavaFlows    Hazard = "lava_flows"
	HazardToxicSpores  Hazard = "toxic_spores"
	HazardRogueFauna   Hazard = "rogue_fauna"
	HazardMicrometeors Hazard = "micrometeors"
)

// Resource is a harvestable deposit class.
type Resource string

const (
	ResourceCommonMetals  Resource = "common_metals"
	ResourceRareMetals    Resource = "rare_metals"
	ResourceWaterIce      Resource = "water_ice"
	ResourceOrganics      Resource = "organics"
	ResourceGeothermal    Resource = "geothermal"
	ResourceCrystals      Resource = "crystals"
	ResourceForceCrystals Resource = "force_crystals"
	ResourceExoticGases   Resource = "exotic_gases"
)

// Detail is the rich planet description derived independently from the
// coarse orbital body, keyed by the same planet seed.
type Detail struct {
	Seed         int64      `json:"seed"`
	Atmosphere   Atmosphere `json:"atmosphere"`
	Climate      Climate    `json:"climate"`
	Hazards      []Hazard   `json:"hazards"`
	Resources    []Resource `json:"resources"`
	EligiblePOIs []poi.Type `json:"eligible_pois"`
	Flavor       string     `json:"flavor"`
}

// HasResource reports whether the detail includes a resource class.
func (d *Detail) HasResource(r Resource) bool {
	for _, have := range d.Resources {
		if have == r {
			return true
		}
	}
	return false
}
