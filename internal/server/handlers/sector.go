package handlers

import (
	"log/slog"
	"net/http"

	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/universe"
)

type SectorHandler struct {
	service *universe.Service
}

func NewSectorHandler(service *universe.Service) *SectorHandler {
	return &SectorHandler{service: service}
}

// GetSector returns the star catalog for one sector cube.
func (h *SectorHandler) GetSector(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_sector")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	x, y, z, err := sectorCoords(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, h.service.Sector(ctx, x, y, z))
}

// GetStar returns one star from a sector catalog.
func (h *SectorHandler) GetStar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_star")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	x, y, z, err := sectorCoords(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	index, err := pathInt(r, "star")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	star, err := h.service.Star(ctx, x, y, z, index)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, star)
}
