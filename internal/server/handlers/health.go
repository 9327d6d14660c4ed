package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"starforge-server/internal/shared/redis"
	"starforge-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Cache     string `json:"cache"`
	RootSeed  int64  `json:"root_seed"`
}

type HealthHandler struct {
	cache    *redis.Client
	rootSeed int64
}

func NewHealthHandler(cache *redis.Client, rootSeed int64) *HealthHandler {
	return &HealthHandler{cache: cache, rootSeed: rootSeed}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	cacheStatus := "disabled"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx).Err(); err == nil {
			cacheStatus = "connected"
		} else {
			cacheStatus = "disconnected"
			logger.Warn("Cache ping failed", "error", err)
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Cache:     cacheStatus,
		RootSeed:  h.rootSeed,
	}

	response.Success(w, http.StatusOK, resp)
}
