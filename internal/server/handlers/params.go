package handlers

import (
	"net/http"
	"strconv"

	"starforge-server/internal/shared/errors"
)

// pathInt parses a required integer path segment.
func pathInt(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, errors.Validationf("%s is required", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+name+" format", err)
	}
	return n, nil
}

// sectorCoords parses the {x}/{y}/{z} sector cube segments.
func sectorCoords(r *http.Request) (x, y, z int, err error) {
	if x, err = pathInt(r, "x"); err != nil {
		return
	}
	if y, err = pathInt(r, "y"); err != nil {
		return
	}
	z, err = pathInt(r, "z")
	return
}

// queryFloat parses a required float query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.Validationf("query parameter %s is required", name)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+name+" format", err)
	}
	return f, nil
}

// queryIntDefault parses an optional integer query parameter.
func queryIntDefault(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+name+" format", err)
	}
	return n, nil
}
