package handlers

import (
	"log/slog"
	"net/http"

	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/universe"
)

type SystemHandler struct {
	service *universe.Service
}

func NewSystemHandler(service *universe.Service) *SystemHandler {
	return &SystemHandler{service: service}
}

// GetSystem returns the orbital layout for one star.
func (h *SystemHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_system")

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

	sys, err := h.service.System(ctx, x, y, z, star)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, sys)
}

// GetPlanetDetail returns the atmosphere/climate/hazard/resource sheet for
// one planet.
func (h *SystemHandler) GetPlanetDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_planet_detail")

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

	detail, err := h.service.PlanetDetail(ctx, x, y, z, star, planetIndex)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, detail)
}
