// Package universe is the read-side facade over the pure generators. It
// holds the single root seed, answers every catalog query by regeneration,
// and optionally memoizes results in Redis keyed by the exact input tuple.
// The cache is pure performance: a miss and a hit are indistinguishable.
package universe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/planet"
	"starforge-server/internal/poi"
	"starforge-server/internal/seed"
	sharederrors "starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/redis"
	"starforge-server/internal/system"
	"starforge-server/internal/terrain"
)

type Service struct {
	root   int64
	logger *slog.Logger

	cache    *redis.Client
	cacheTTL time.Duration

	galaxies *galaxy.Service
	systems  *system.Service
	planets  *planet.Service
	pois     *poi.Service
}

// NewService builds the facade. seedText is the operator-chosen universe
// seed: a decimal integer is used as-is, anything else is hashed. cache may
// be nil, in which case every query regenerates.
func NewService(seedText string, cache *redis.Client, cacheTTL time.Duration, logger *slog.Logger) *Service {
	root := RootSeed(seedText)
	logger.Info("Universe service initialized", "root_seed", root, "cache_enabled", cache != nil)

	return &Service{
		root:     root,
		logger:   logger.With("component", "universe_service"),
		cache:    cache,
		cacheTTL: cacheTTL,
		galaxies: galaxy.NewService(logger),
		systems:  system.NewService(logger),
		planets:  planet.NewService(logger),
		pois:     poi.NewService(logger),
	}
}

// RootSeed resolves a seed string the way players type them: numeric
// strings map directly, words are hashed.
func RootSeed(seedText string) int64 {
	if n, err := strconv.ParseInt(seedText, 10, 64); err == nil {
		return n
	}
	return seed.FromString(seedText)
}

// RootSeedValue exposes the resolved root seed for diagnostics.
func (s *Service) RootSeedValue() int64 {
	return s.root
}

// Sector returns the star catalog for a sector cube.
func (s *Service) Sector(ctx context.Context, x, y, z int) galaxy.Sector {
	key := fmt.Sprintf("sector:%d:%d:%d:%d", s.root, x, y, z)

	var sec galaxy.Sector
	if s.cacheGet(ctx, key, &sec) {
		return sec
	}

	sec = s.galaxies.GenerateSector(s.root, x, y, z)
	s.cacheSet(ctx, key, sec)
	return sec
}

// Star returns one star from a sector catalog.
func (s *Service) Star(ctx context.Context, x, y, z, index int) (*galaxy.Star, error) {
	sec := s.Sector(ctx, x, y, z)
	if index < 0 || index >= len(sec.Stars) {
		return nil, sharederrors.NotFoundf("star %d not in sector (%d,%d,%d)", index, x, y, z)
	}
	star := sec.Stars[index]
	return &star, nil
}

// System returns the orbital layout for a star.
func (s *Service) System(ctx context.Context, x, y, z, starIndex int) (*system.System, error) {
	key := fmt.Sprintf("system:%d:%d:%d:%d:%d", s.root, x, y, z, starIndex)

	var sys system.System
	if s.cacheGet(ctx, key, &sys) {
		return &sys, nil
	}

	star, err := s.Star(ctx, x, y, z, starIndex)
	if err != nil {
		return nil, err
	}
	out := s.systems.GenerateSystem(s.root, x, y, z, starIndex, star)
	s.cacheSet(ctx, key, out)
	return out, nil
}

// body resolves a planet index inside a system.
func (s *Service) body(ctx context.Context, x, y, z, starIndex, planetIndex int) (*system.OrbitalBody, error) {
	sys, err := s.System(ctx, x, y, z, starIndex)
	if err != nil {
		return nil, err
	}
	if planetIndex < 0 || planetIndex >= len(sys.Bodies) {
		return nil, sharederrors.NotFoundf("planet %d not in system %d of sector (%d,%d,%d)", planetIndex, starIndex, x, y, z)
	}
	return &sys.Bodies[planetIndex], nil
}

// PlanetDetail returns the atmosphere/climate/hazard/resource sheet for a
// planet.
func (s *Service) PlanetDetail(ctx context.Context, x, y, z, starIndex, planetIndex int) (*planet.Detail, error) {
	key := fmt.Sprintf("planet:%d:%d:%d:%d:%d:%d", s.root, x, y, z, starIndex, planetIndex)

	var d planet.Detail
	if s.cacheGet(ctx, key, &d) {
		return &d, nil
	}

	body, err := s.body(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return nil, err
	}
	out := s.planets.GenerateDetail(body.Seed, body.Type)
	s.cacheSet(ctx, key, out)
	return out, nil
}

// TerrainConfig derives the per-planet terrain parameter set. Gas giants
// have no surface and are rejected.
func (s *Service) TerrainConfig(ctx context.Context, x, y, z, starIndex, planetIndex int) (terrain.Config, error) {
	body, err := s.body(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return terrain.Config{}, err
	}
	if body.Type == terrain.PlanetGasGiant {
		return terrain.Config{}, sharederrors.Validationf("planet %d is a gas giant and has no surface", planetIndex)
	}
	return terrain.NewConfig(body.Seed, body.Type, nil), nil
}

// Tile generates one terrain tile for a planet.
func (s *Service) Tile(ctx context.Context, x, y, z, starIndex, planetIndex, tileX, tileY, lod, resolution int) (*terrain.Tile, error) {
	cfg, err := s.TerrainConfig(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return nil, err
	}
	if resolution < 2 {
		return nil, sharederrors.Validationf("tile resolution must be at least 2, got %d", resolution)
	}

	key := fmt.Sprintf("tile:%d:%d:%d:%d:%d:%d:%d:%d:%d:%d", s.root, x, y, z, starIndex, planetIndex, tileX, tileY, lod, resolution)

	var tile terrain.Tile
	if s.cacheGet(ctx, key, &tile) {
		return &tile, nil
	}

	out := terrain.GenerateTile(cfg, tileX, tileY, lod, resolution)
	s.cacheSet(ctx, key, out)
	return out, nil
}

// HeightAt answers a point query against a planet's height field.
func (s *Service) HeightAt(ctx context.Context, x, y, z, starIndex, planetIndex int, wx, wy float64) (float64, error) {
	cfg, err := s.TerrainConfig(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return 0, err
	}
	return terrain.HeightAt(cfg, wx, wy), nil
}

// BiomeAt answers a point query against a planet's biome classification.
func (s *Service) BiomeAt(ctx context.Context, x, y, z, starIndex, planetIndex int, wx, wy float64) (terrain.Biome, error) {
	cfg, err := s.TerrainConfig(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return 0, err
	}
	return terrain.BiomeAt(cfg, wx, wy), nil
}

// POIs returns the placed points of interest for a planet. Gas giants
// yield an empty list rather than an error so clients can treat the POI
// list as universally queryable.
func (s *Service) POIs(ctx context.Context, x, y, z, starIndex, planetIndex int) ([]poi.POI, error) {
	body, err := s.body(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("pois:%d:%d:%d:%d:%d:%d", s.root, x, y, z, starIndex, planetIndex)

	var pois []poi.POI
	if s.cacheGet(ctx, key, &pois) {
		return pois, nil
	}

	var cfg terrain.Config
	if body.Type != terrain.PlanetGasGiant {
		cfg = terrain.NewConfig(body.Seed, body.Type, nil)
	}
	pois = s.pois.GeneratePlanetPOIs(body.Seed, body.Type, cfg)
	s.cacheSet(ctx, key, pois)
	return pois, nil
}

// Structure returns the procedural structure layout for one POI.
func (s *Service) Structure(ctx context.Context, x, y, z, starIndex, planetIndex, poiIndex int) (*poi.StructureLayout, error) {
	pois, err := s.POIs(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return nil, err
	}
	if poiIndex < 0 || poiIndex >= len(pois) {
		return nil, sharederrors.NotFoundf("poi %d not on planet %d", poiIndex, planetIndex)
	}
	p := pois[poiIndex]
	layout := poi.GenerateStructure(p.Seed, p.Size)
	return &layout, nil
}

// cacheGet loads a memoized value. Any cache failure is treated as a miss;
// the generators are the source of truth.
func (s *Service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("Corrupt cache entry dropped", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("Cache write failed", "key", key, "error", err)
	}
}
