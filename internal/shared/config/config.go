package config

import (
	"fmt"
	"runtime"
	"starforge-server/internal/shared/utils"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Universe  UniverseConfig
	Terrain   TerrainConfig
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type ServerConfig struct {
	Port         string
	URL          string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
}

type UniverseConfig struct {
	Seed          string
	SectorRadius  int
	DefaultGalaxy string
	CacheTTL      time.Duration
}

type TerrainConfig struct {
	WorkerCount  int
	TilesPerTick int
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	config := &Config{
		Server:    loadServerConfig(),
		Redis:     loadRedisConfig(),
		Frontend:  loadFrontendConfig(),
		Logging:   loadLoggingConfig(),
		RateLimit: loadRateLimitConfig(),
		Universe:  loadUniverseConfig(),
		Terrain:   loadTerrainConfig(),
	}

	return config, nil
}

func loadRedisConfig() RedisConfig {
	enabled := utils.GetEnv("REDIS_ENABLED", "false") == "true"
	redisURL := utils.GetEnv("REDIS_URL", "")

	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:  enabled,
		URL:      redisURL,
		Host:     utils.GetEnv("REDIS_HOST", "localhost"),
		Port:     utils.GetEnv("REDIS_PORT", "6379"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func loadServerConfig() ServerConfig {
	readTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_WRITE_TIMEOUT_SECONDS", "15"))
	idleTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))

	return ServerConfig{
		Port:         utils.GetEnv("SERVER_PORT", "8080"),
		URL:          utils.GetEnv("SERVER_URL", "http://localhost:8080"),
		Environment:  utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
	}
}

func loadFrontendConfig() FrontendConfig {
	corsDebug := utils.GetEnv("CORS_DEBUG", "") == "true"

	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: corsDebug,
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		Format:     utils.GetEnv("LOG_FORMAT", "text"),
		JSONFormat: jsonFormat,
	}
}

func loadRateLimitConfig() RateLimitConfig {
	enabled := utils.GetEnv("RATE_LIMIT_ENABLED", "true") == "true"
	requestsPerSecond, _ := strconv.ParseFloat(utils.GetEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "10"), 64)
	burstSize, _ := strconv.Atoi(utils.GetEnv("RATE_LIMIT_BURST_SIZE", "20"))

	return RateLimitConfig{
		Enabled:           enabled,
		RequestsPerSecond: requestsPerSecond,
		BurstSize:         burstSize,
	}
}

func loadUniverseConfig() UniverseConfig {
	sectorRadius, _ := strconv.Atoi(utils.GetEnv("UNIVERSE_SECTOR_RADIUS", "8"))
	cacheTTL, _ := strconv.Atoi(utils.GetEnv("UNIVERSE_CACHE_TTL_MINUTES", "30"))

	return UniverseConfig{
		Seed:          utils.GetEnv("UNIVERSE_SEED", "starforge"),
		SectorRadius:  sectorRadius,
		DefaultGalaxy: utils.GetEnv("UNIVERSE_DEFAULT_GALAXY_NAME", "Perseus Reach"),
		CacheTTL:      time.Duration(cacheTTL) * time.Minute,
	}
}

func loadTerrainConfig() TerrainConfig {
	workerCount, _ := strconv.Atoi(utils.GetEnv("TERRAIN_WORKER_COUNT", strconv.Itoa(runtime.NumCPU())))
	tilesPerTick, _ := strconv.Atoi(utils.GetEnv("TERRAIN_TILES_PER_TICK", "4"))

	return TerrainConfig{
		WorkerCount:  workerCount,
		TilesPerTick: tilesPerTick,
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Server.URL == "" {
		return fmt.Errorf("SERVER_URL is required")
	}

	if c.Universe.Seed == "" {
		return fmt.Errorf("UNIVERSE_SEED is required")
	}

	if c.Universe.SectorRadius < 1 {
		return fmt.Errorf("UNIVERSE_SECTOR_RADIUS must be at least 1")
	}

	if c.Terrain.WorkerCount < 1 {
		return fmt.Errorf("TERRAIN_WORKER_COUNT must be at least 1")
	}

	if c.Terrain.TilesPerTick < 1 {
		return fmt.Errorf("TERRAIN_TILES_PER_TICK must be at least 1")
	}

	return nil
}
