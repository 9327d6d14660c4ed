package poi

// Type identifies a point-of-interest archetype from the fixed catalog.
type Type string

const (
	TypeCaveSystem      Type = "cave_system"
	TypeCrashedShip     Type = "crashed_ship"
	TypeAbandonedMine   Type = "abandoned_mine"
	TypeRuins           Type = "ruins"
	TypeResearchStation Type = "research_station"
	TypeTemple          Type = "temple"
	TypeAncientMonument Type = "ancient_monument"
)

// catalogEntry fixes the spawn weight, size bounds and artifact word pools
// for one POI archetype. A closed table keyed by the Type enum replaces the
// loose stat dictionaries of the original design.
type catalogEntry struct {
	weight   float64
	minSize  float64
	maxSize  float64
	prefixes []string
	suffixes []string
}

var catalog = map[Type]catalogEntry{
	TypeCaveSystem: {30, 8, 30,
		[]string{"Glimmering", "Hollow", "Echoing"},
		[]string{"Geode", "Stalactite", "Crystal Cluster"}},
	TypeCrashedShip: {18, 10, 40,
		[]string{"Scorched", "Corroded", "Sealed"},
		[]string{"Flight Recorder", "Power Core", "Nav Computer"}},
	TypeAbandonedMine: {16, 12, 35,
		[]string{"Rusted", "Forgotten", "Deep-Bore"},
		[]string{"Drill Head", "Ore Sample", "Foreman's Log"}},
	TypeRuins: {14, 15, 60,
		[]string{"Weathered", "Sunken", "Overgrown"},
		[]string{"Tablet", "Relief Carving", "Keystone"}},
	TypeResearchStation: {12, 10, 30,
		[]string{"Quarantined", "Derelict", "Automated"},
		[]string{"Data Slate", "Specimen Jar", "Field Journal"}},
	TypeTemple: {7, 20, 50,
		[]string{"Silent", "Luminous", "Forbidden"},
		[]string{"Idol", "Offering Bowl", "Meditation Stone"}},
	TypeAncientMonument: {3, 25, 80,
		[]string{"Primordial", "Starfallen", "Eternal"},
		[]string{"Obelisk Shard", "Star Map", "Harmonic Ring"}},
}

// AllTypes lists every archetype in fixed catalog order.
var AllTypes = []Type{
	TypeCaveSystem, TypeCrashedShip, TypeAbandonedMine, TypeRuins,
	TypeResearchStation, TypeTemple, TypeAncientMonument,
}

// SizeBounds returns the configured min/max footprint for a POI type.
func SizeBounds(t Type) (min, max float64) {
	e := catalog[t]
	return e.minSize, e.maxSize
}

// Artifact is the collectible placed inside a POI. Position is relative to
// the POI origin.
type Artifact struct {
	Name      string  `json:"name"`
	RelativeX float64 `json:"relative_x"`
	RelativeY float64 `json:"relative_y"`
}

// POI is a placed surface feature. All fields except the two session flags
// are immutable once generated; Discovered and ArtifactCollected are set by
// gameplay interaction, never by the generator.
type POI struct {
	Index    int      `json:"index"`
	Seed     int64    `json:"seed"`
	Type     Type     `json:"type"`
	WorldX   float64  `json:"world_x"`
	WorldY   float64  `json:"world_y"`
	Size     float64  `json:"size"`
	Rotation float64  `json:"rotation"`
	Artifact Artifact `json:"artifact"`

	Discovered        bool `json:"discovered"`
	ArtifactCollected bool `json:"artifact_collected"`
}

// ArtifactWorldPosition returns the artifact's absolute world coordinates.
func (p *POI) ArtifactWorldPosition() (float64, float64) {
	return p.WorldX + p.Artifact.RelativeX, p.WorldY + p.Artifact.RelativeY
}
