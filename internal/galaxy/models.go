package galaxy

// SpectralClass follows the Morgan-Keenan sequence, hottest to coolest.
type SpectralClass string

const (
	ClassO SpectralClass = "O"
	ClassB SpectralClass = "B"
	ClassA SpectralClass = "A"
	ClassF SpectralClass = "F"
	ClassG SpectralClass = "G"
	ClassK SpectralClass = "K"
	ClassM SpectralClass = "M"
)

// Faction is a coarse political affiliation rolled per star.
type Faction string

const (
	FactionUnaligned  Faction = "unaligned"
	FactionDominion   Faction = "dominion"
	FactionFreeWorlds Faction = "free_worlds"
	FactionSyndicate  Faction = "syndicate"
	FactionAncients   Faction = "ancients"
)

// Star is one entry of a sector's star catalog. Position is normalized to
// the sector cube [0,1]³.
type Star struct {
	Index       int           `json:"index"`
	Name        string        `json:"name"`
	Class       SpectralClass `json:"class"`
	Position    [3]float64    `json:"position"`
	PlanetCount int           `json:"planet_count"`
	Faction     Faction       `json:"faction"`
	Danger      int           `json:"danger"`
}

// Sector is a cube of space holding MinStars to MaxStars stars, fully
// determined by (root seed, cube coordinates).
type Sector struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Seed  int64  `json:"seed"`
	Stars []Star `json:"stars"`
}
