// Package seed derives child seeds for every generation layer. Each layer
// mixes its parent seed with a fixed salt and the layer's local coordinates,
// so sibling layers that happen to share numeric coordinates can never
// collide. Every function takes an explicit parent seed; there is no package
// state, which keeps the derivations pure and testable.
package seed

import "starforge-server/internal/hash"

// Layer salts. Fixed forever: changing one regenerates every world.
const (
	saltGalaxy  int64 = 0x47414c58 // "GALX"
	saltSector  int64 = 0x53454354 // "SECT"
	saltSystem  int64 = 0x53595354 // "SYST"
	saltPlanet  int64 = 0x504c4e54 // "PLNT"
	saltTile    int64 = 0x54494c45 // "TILE"
	saltPOI     int64 = 0x504f4920 // "POI "
	saltNPC     int64 = 0x4e504320 // "NPC "
	saltItem    int64 = 0x4954454d // "ITEM"
	saltMission int64 = 0x4d53534e // "MSSN"
)

// FromString maps an arbitrary seed string to a root seed. Empty strings map
// to seed zero, which is a valid universe.
func FromString(s string) int64 {
	return hash.Combine(0, "universe", s)
}

// ForGalaxy derives the galaxy seed from the universe root seed.
func ForGalaxy(root int64) int64 {
	return hash.Combine(root, saltGalaxy)
}

// ForSector derives a sector seed from its galaxy seed and cube coordinates.
func ForSector(galaxy int64, x, y, z int) int64 {
	return hash.Combine(galaxy, saltSector, x, y, z)
}

// ForSystem derives a system seed from its sector seed and star index.
func ForSystem(sector int64, index int) int64 {
	return hash.Combine(sector, saltSystem, index)
}

// ForPlanet derives a planet seed from its system seed and orbital index.
func ForPlanet(system int64, index int) int64 {
	return hash.Combine(system, saltPlanet, index)
}

// ForTile derives a terrain-tile seed from its planet seed and tile coords.
func ForTile(planet int64, tx, ty int) int64 {
	return hash.Combine(planet, saltTile, tx, ty)
}

// ForPOI derives a point-of-interest seed from its planet seed and index.
func ForPOI(planet int64, index int) int64 {
	return hash.Combine(planet, saltPOI, index)
}

// ForNPC derives an NPC seed from its parent seed and index.
func ForNPC(parent int64, index int) int64 {
	return hash.Combine(parent, saltNPC, index)
}

// ForItem derives an item seed from its parent seed and index.
func ForItem(parent int64, index int) int64 {
	return hash.Combine(parent, saltItem, index)
}

// ForMission derives a mission seed from its parent seed and index.
func ForMission(parent int64, index int) int64 {
	return hash.Combine(parent, saltMission, index)
}
