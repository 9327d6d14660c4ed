package handlers

import (
	"log/slog"
	"net/http"
	"sort"

	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/terrain"
	"starforge-server/internal/universe"
)

type TerrainHandler struct {
	service      *universe.Service
	workers      int
	tilesPerTick int
}

func NewTerrainHandler(service *universe.Service, workers, tilesPerTick int) *TerrainHandler {
	return &TerrainHandler{service: service, workers: workers, tilesPerTick: tilesPerTick}
}

// GetTile streams one terrain tile. LOD defaults to 0; resolution defaults
// to the LOD table entry for the requested tier.
func (h *TerrainHandler) GetTile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_tile")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	x, y, z, err := sectorCoords(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	star, err := pathInt(r, "star")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	planetIndex, err := pathInt(r, "planet")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	tx, err := pathInt(r, "tx")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	ty, err := pathInt(r, "ty")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	lod, err := queryIntDefault(r, "lod", 0)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	defaultRes := 0
	for _, lvl := range terrain.Levels() {
		if lvl.LOD == lod {
			defaultRes = lvl.Resolution
		}
	}
	if defaultRes == 0 {
		response.Error(w, r, logger, errors.Validationf("unknown lod tier %d", lod))
		return
	}
	resolution, err := queryIntDefault(r, "resolution", defaultRes)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	tile, err := h.service.Tile(ctx, x, y, z, star, planetIndex, tx, ty, lod, resolution)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, tile)
}

const maxNeighborhoodRadius = 3

type NeighborhoodTile struct {
	TileX int           `json:"tile_x"`
	TileY int           `json:"tile_y"`
	LOD   int           `json:"lod"`
	Tile  *terrain.Tile `json:"tile"`
}

// GetTileNeighborhood prefetches the square of tiles around a center
// through the background worker pool, each at the LOD tier for its
// distance. This is the bulk path for a client landing on a planet.
func (h *TerrainHandler) GetTileNeighborhood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_tile_neighborhood")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	x, y, z, err := sectorCoords(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	star, err := pathInt(r, "star")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	planetIndex, err := pathInt(r, "planet")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	centerX, err := queryIntDefault(r, "center_x", 0)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	centerY, err := queryIntDefault(r, "center_y", 0)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	radius, err := queryIntDefault(r, "radius", 1)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if radius < 0 || radius > maxNeighborhoodRadius {
		response.Error(w, r, logger, errors.Validationf("radius must be between 0 and %d", maxNeighborhoodRadius))
		return
	}

	streamer, err := h.service.NewStreamer(ctx, x, y, z, star, planetIndex, h.workers, h.tilesPerTick)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	defer streamer.Close()

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			dist := chebyshev(dx, dy)
			streamer.Request(centerX+dx, centerY+dy, dist)
		}
	}

	results := streamer.Collect()

	// Worker completion order is nondeterministic; sort for stable output.
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].Key, results[j].Key
		if a.TileY != b.TileY {
			return a.TileY < b.TileY
		}
		return a.TileX < b.TileX
	})

	out := make([]NeighborhoodTile, len(results))
	for i, res := range results {
		out[i] = NeighborhoodTile{TileX: res.Key.TileX, TileY: res.Key.TileY, LOD: res.Key.LOD, Tile: res.Tile}
	}

	response.Success(w, http.StatusOK, out)
}

func chebyshev(dx, dy int) float64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		dx = dy
	}
	return float64(dx)
}

type SampleResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
	Biome  string  `json:"biome"`
}

// GetSample answers a point query: height and biome at world coordinates.
func (h *TerrainHandler) GetSample(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_sample")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	x, y, z, err := sectorCoords(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	star, err := pathInt(r, "star")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	planetIndex, err := pathInt(r, "planet")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	wx, err := queryFloat(r, "x")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	wy, err := queryFloat(r, "y")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	height, err := h.service.HeightAt(ctx, x, y, z, star, planetIndex, wx, wy)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	biome, err := h.service.BiomeAt(ctx, x, y, z, star, planetIndex, wx, wy)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, SampleResponse{
		X:      wx,
		Y:      wy,
		Height: height,
		Biome:  biome.String(),
	})
}

type LODResponse struct {
	LOD             int     `json:"lod"`
	Resolution      int     `json:"resolution"`
	MaxTileDistance float64 `json:"max_tile_distance"`
}

// GetLODs returns the fixed LOD tier table.
func (h *TerrainHandler) GetLODs(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_lods")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	levels := terrain.Levels()
	out := make([]LODResponse, len(levels))
	for i, lvl := range levels {
		out[i] = LODResponse{LOD: lvl.LOD, Resolution: lvl.Resolution, MaxTileDistance: lvl.MaxTileDistance}
	}

	response.Success(w, http.StatusOK, out)
}
