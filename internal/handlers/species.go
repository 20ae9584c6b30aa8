package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/sbilibin2017/animal-shelter/internal/services"
)

//go:generate mockgen -source=species.go -destination=species_mock.go -package=handlers

// SpeciesManager defines the species operations used by the handlers.
type SpeciesManager interface {
	List(ctx context.Context) ([]models.Species, error)
	Create(ctx context.Context, name string) (models.Species, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// SpeciesRequest is the body of species create and update.
// swagger:model SpeciesRequest
type SpeciesRequest struct {
	// required: true
	// default: Rabbit
	SpeciesName string `json:"species_name" validate:"required"`
}

// SpeciesListResponse lists all species.
// swagger:model SpeciesListResponse
type SpeciesListResponse struct {
	Success bool             `json:"success"`
	Data    []models.Species `json:"data"`
	Total   int              `json:"total"`
}

// SpeciesResponse carries a created species.
// swagger:model SpeciesResponse
type SpeciesResponse struct {
	Success bool           `json:"success"`
	Data    models.Species `json:"data"`
}

// SpeciesMessageResponse is returned by update and delete.
// swagger:model SpeciesMessageResponse
type SpeciesMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SpeciesErrorResponse is the species failure envelope.
// swagger:model SpeciesErrorResponse
type SpeciesErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeSpeciesError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, SpeciesErrorResponse{Success: false, Error: msg})
}

// NewListSpeciesHandler returns an HTTP handler listing species.
// @Summary List species
// @Tags species
// @Produce json
// @Success 200 {object} handlers.SpeciesListResponse
// @Failure 404 {object} handlers.ErrorResponse "No species found"
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /species [get]
func NewListSpeciesHandler(svc SpeciesManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		species, err := svc.List(r.Context())
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		if len(species) == 0 {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "No species found"})
			return
		}
		writeJSON(w, http.StatusOK, SpeciesListResponse{Success: true, Data: species, Total: len(species)})
	}
}

// NewCreateSpeciesHandler returns an HTTP handler creating a species.
// @Summary Create species
// @Tags species
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param species body handlers.SpeciesRequest true "Species"
// @Success 201 {object} handlers.SpeciesResponse
// @Failure 400 {object} handlers.SpeciesErrorResponse "species_name is required"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /species [post]
func NewCreateSpeciesHandler(svc SpeciesManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SpeciesRequest
		if err := decodeJSON(r, &req); err != nil {
			writeSpeciesError(w, http.StatusBadRequest, invalidBody)
			return
		}
		if err := validateStruct(req); err != nil {
			writeSpeciesError(w, http.StatusBadRequest, err.Error())
			return
		}

		species, err := svc.Create(r.Context(), req.SpeciesName)
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, SpeciesResponse{Success: true, Data: species})
	}
}

// NewUpdateSpeciesHandler returns an HTTP handler renaming a species.
// @Summary Update species
// @Tags species
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Species ID"
// @Param species body handlers.SpeciesRequest true "Species"
// @Success 200 {object} handlers.SpeciesMessageResponse
// @Failure 400 {object} handlers.SpeciesErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.SpeciesErrorResponse "Species not found"
// @Router /species/{id} [put]
func NewUpdateSpeciesHandler(svc SpeciesManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeSpeciesError(w, http.StatusNotFound, "Species not found")
			return
		}

		var req SpeciesRequest
		if err := decodeJSON(r, &req); err != nil {
			writeSpeciesError(w, http.StatusBadRequest, invalidBody)
			return
		}
		if err := validateStruct(req); err != nil {
			writeSpeciesError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = svc.Update(r.Context(), id, req.SpeciesName)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeSpeciesError(w, http.StatusNotFound, "Species not found")
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, SpeciesMessageResponse{Success: true, Message: "Species updated successfully"})
		}
	}
}

// NewDeleteSpeciesHandler returns an HTTP handler deleting a species.
// @Summary Delete species
// @Tags species
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Species ID"
// @Success 200 {object} handlers.SpeciesMessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.SpeciesErrorResponse "Species not found"
// @Router /species/{id} [delete]
func NewDeleteSpeciesHandler(svc SpeciesManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeSpeciesError(w, http.StatusNotFound, "Species not found")
			return
		}

		err = svc.Delete(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeSpeciesError(w, http.StatusNotFound, "Species not found")
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, SpeciesMessageResponse{Success: true, Message: "Species deleted successfully"})
		}
	}
}
