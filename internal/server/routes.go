package server

import (
	"log/slog"
	"net/http"

	serverHandlers "starforge-server/internal/server/handlers"
	"starforge-server/internal/shared/config"
	"starforge-server/internal/shared/redis"
	"starforge-server/internal/universe"
)

type Routes struct {
	universeService *universe.Service
	cache           *redis.Client
	terrainCfg      config.TerrainConfig
	logger          *slog.Logger
}

func NewRoutes(universeService *universe.Service, cache *redis.Client, terrainCfg config.TerrainConfig, logger *slog.Logger) *Routes {
	return &Routes{
		universeService: universeService,
		cache:           cache,
		terrainCfg:      terrainCfg,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.cache, r.universeService.RootSeedValue())
	sectorHandler := serverHandlers.NewSectorHandler(r.universeService)
	systemHandler := serverHandlers.NewSystemHandler(r.universeService)
	terrainHandler := serverHandlers.NewTerrainHandler(r.universeService, r.terrainCfg.WorkerCount, r.terrainCfg.TilesPerTick)
	poiHandler := serverHandlers.NewPOIHandler(r.universeService)

	mux.Handle("/api/server/health", healthHandler)

	mux.HandleFunc("/api/sectors/{x}/{y}/{z}", sectorHandler.GetSector)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}", sectorHandler.GetStar)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}/system", systemHandler.GetSystem)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}/planets/{planet}", systemHandler.GetPlanetDetail)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}/planets/{planet}/pois", poiHandler.GetPOIs)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}/planets/{planet}/pois/{poi}/structure", poiHandler.GetStructure)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}/planets/{planet}/tiles/{tx}/{ty}", terrainHandler.GetTile)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}/planets/{planet}/tiles", terrainHandler.GetTileNeighborhood)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/stars/{star}/planets/{planet}/sample", terrainHandler.GetSample)

	mux.HandleFunc("/api/terrain/lods", terrainHandler.GetLODs)

	logger.Info("Routes configured successfully",
		"catalog_endpoints", []string{"/api/sectors", "/api/sectors/stars", "/api/sectors/stars/system"},
		"planet_endpoints", []string{"planets", "planets/pois", "planets/pois/structure"},
		"terrain_endpoints", []string{"planets/tiles", "planets/sample", "/api/terrain/lods"},
	)

	return mux
}
