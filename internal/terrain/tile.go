package terrain

import "math"

const (
	// baseTileSize is the world-space extent of an LOD-0 tile. Footprint
	// doubles per LOD step.
	baseTileSize = 64.0

	// heightAmplitude converts normalized height into world units for
	// normal-vector slopes.
	heightAmplitude = 48.0

	// MaxSynchronousTilesPerTick bounds how many tiles a caller may generate
	// inline in one scheduling tick before it must fall back to the
	// background worker; it caps the worst-case frame stall.
	MaxSynchronousTilesPerTick = 4
)

// Tile holds the generated surface samples for one (coords, lod) pair.
// Arrays are resolution² in row-major order. Tiles are immutable once
// returned.
type Tile struct {
	TileX      int          `json:"tile_x"`
	TileY      int          `json:"tile_y"`
	LOD        int          `json:"lod"`
	Resolution int          `json:"resolution"`
	WorldSize  float64      `json:"world_size"`
	Heights    []float64    `json:"heights"`
	Biomes     []Biome      `json:"biomes"`
	Normals    [][3]float64 `json:"normals"`
}

// TileWorldSize returns the world-space edge length of a tile at the given
// LOD.
func TileWorldSize(lod int) float64 {
	return baseTileSize * float64(uint64(1)<<uint(lod))
}

// GenerateTile synthesizes a terrain tile. World positions come from the
// closed formula world = tile*size + local*step rather than accumulated
// per-step floats, so two adjacent tiles computing their shared boundary
// derive bit-identical world coordinates and therefore identical heights.
// resolution must be at least 2.
func GenerateTile(cfg Config, tileX, tileY, lod, resolution int) *Tile {
	size := TileWorldSize(lod)
	step := size / float64(resolution-1)
	originX := float64(tileX) * size
	originY := float64(tileY) * size

	n := resolution * resolution
	tile := &Tile{
		TileX:      tileX,
		TileY:      tileY,
		LOD:        lod,
		Resolution: resolution,
		WorldSize:  size,
		Heights:    make([]float64, n),
		Biomes:     make([]Biome, n),
		Normals:    make([][3]float64, n),
	}

	for y := 0; y < resolution; y++ {
		wy := originY + float64(y)*step
		for x := 0; x < resolution; x++ {
			wx := originX + float64(x)*step
			h := sampleHeight(cfg, wx, wy)
			idx := y*resolution + x
			tile.Heights[idx] = h
			tile.Biomes[idx] = classify(cfg, h, temperatureAt(cfg, wy, h), sampleMoisture(cfg, wx, wy))
		}
	}

	computeNormals(tile, step)
	return tile
}

// computeNormals fills in surface normals via central differences once all
// heights are known. Neighbor lookups clamp to the tile edge.
func computeNormals(t *Tile, step float64) {
	res := t.Resolution
	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		} else if x >= res {
			x = res - 1
		}
		if y < 0 {
			y = 0
		} else if y >= res {
			y = res - 1
		}
		return t.Heights[y*res+x]
	}

	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			dx := (at(x+1, y) - at(x-1, y)) * heightAmplitude / (2 * step)
			dy := (at(x, y+1) - at(x, y-1)) * heightAmplitude / (2 * step)
			nx, ny, nz := -dx, -dy, 1.0
			inv := 1 / math.Sqrt(nx*nx+ny*ny+nz*nz)
			t.Normals[y*res+x] = [3]float64{nx * inv, ny * inv, nz * inv}
		}
	}
}

// HeightAt returns the normalized terrain height at an arbitrary world
// position without generating a full tile.
func HeightAt(cfg Config, wx, wy float64) float64 {
	return sampleHeight(cfg, wx, wy)
}

// BiomeAt returns the biome classification at an arbitrary world position.
func BiomeAt(cfg Config, wx, wy float64) Biome {
	return biomeAt(cfg, wx, wy)
}
