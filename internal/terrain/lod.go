package terrain

// LODLevel pairs a discrete detail tier with the resolution the tile
// streamer should request at that tier. Lower LOD numbers are closer and
// denser; higher tiers double the tile footprint while sampling fewer
// points.
type LODLevel struct {
	LOD        int
	Resolution int
	// MaxTileDistance is the tier cutoff in tile units from the reference
	// point; the last entry is open-ended.
	MaxTileDistance float64
}

// lodTable is consulted by the tile-streaming collaborator. Discrete tiers,
// nearest first.
var lodTable = []LODLevel{
	{LOD: 0, Resolution: 65, MaxTileDistance: 2},
	{LOD: 1, Resolution: 33, MaxTileDistance: 4},
	{LOD: 2, Resolution: 17, MaxTileDistance: 8},
	{LOD: 3, Resolution: 9, MaxTileDistance: 16},
}

// LevelForDistance selects the LOD tier for a tile at the given distance (in
// tile units) from the reference point. Distances beyond the table clamp to
// the coarsest tier.
func LevelForDistance(tileDistance float64) LODLevel {
	for _, lvl := range lodTable {
		if tileDistance <= lvl.MaxTileDistance {
			return lvl
		}
	}
	return lodTable[len(lodTable)-1]
}

// Levels returns a copy of the full LOD table.
func Levels() []LODLevel {
	out := make([]LODLevel, len(lodTable))
	copy(out, lodTable)
	return out
}
