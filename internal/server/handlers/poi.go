package handlers

import (
	"log/slog"
	"net/http"

	"starforge-server/internal/poi"
	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
	"starforge-server/internal/universe"
)

type POIHandler struct {
	service *universe.Service
}

func NewPOIHandler(service *universe.Service) *POIHandler {
	return &POIHandler{service: service}
}

// GetPOIs returns the placed points of interest for one planet.
func (h *POIHandler) GetPOIs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_pois")

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

	pois, err := h.service.POIs(ctx, x, y, z, star, planetIndex)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if pois == nil {
		pois = []poi.POI{}
	}

	response.Success(w, http.StatusOK, pois)
}

// GetStructure returns the procedural structure layout for one POI.
func (h *POIHandler) GetStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_structure")

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
	poiIndex, err := pathInt(r, "poi")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	layout, err := h.service.Structure(ctx, x, y, z, star, planetIndex, poiIndex)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, layout)
}
