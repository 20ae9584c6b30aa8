package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/sbilibin2017/animal-shelter/internal/services"
)

//go:generate mockgen -source=pets.go -destination=pets_mock.go -package=handlers

// PetManager defines the pet operations used by the handlers.
type PetManager interface {
	List(ctx context.Context) ([]models.Pet, error)
	Create(ctx context.Context, in models.PetInput) (int64, error)
	Update(ctx context.Context, id int64, in models.PetInput) error
	Delete(ctx context.Context, id int64) error
}

// PetListResponse lists all pets.
// swagger:model PetListResponse
type PetListResponse struct {
	Success bool         `json:"success"`
	Data    []models.Pet `json:"data"`
	Total   int          `json:"total"`
}

// PetID wraps a generated pet id.
type PetID struct {
	PetID int64 `json:"pet_id"`
}

// PetCreatedResponse carries the id of a created pet.
// swagger:model PetCreatedResponse
type PetCreatedResponse struct {
	Success bool  `json:"success"`
	Data    PetID `json:"data"`
}

// NewListPetsHandler returns an HTTP handler listing pets. An empty list is not an error.
// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {object} handlers.PetListResponse
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /pets [get]
func NewListPetsHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := svc.List(r.Context())
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PetListResponse{Success: true, Data: pets, Total: len(pets)})
	}
}

// NewCreatePetHandler returns an HTTP handler creating a pet. Missing fields
// are rejected by the store.
// @Summary Create pet
// @Tags pets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param pet body models.PetInput true "Pet"
// @Success 201 {object} handlers.PetCreatedResponse
// @Failure 400 {object} handlers.ErrorResponse "invalid request body"
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /pets [post]
func NewCreatePetHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.PetInput
		if err := decodeJSON(r, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}

		id, err := svc.Create(r.Context(), in)
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, PetCreatedResponse{Success: true, Data: PetID{PetID: id}})
	}
}

// NewUpdatePetHandler returns an HTTP handler replacing a pet's fields.
// date_arrived is not updatable.
// @Summary Update pet
// @Tags pets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Pet ID"
// @Param pet body models.PetInput true "Pet"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /pets/{id} [put]
func NewUpdatePetHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Pet not found"})
			return
		}

		var in models.PetInput
		if err := decodeJSON(r, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}

		err = svc.Update(r.Context(), id, in)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Pet not found"})
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Pet updated successfully"})
		}
	}
}

// NewDeletePetHandler returns an HTTP handler deleting a pet.
// @Summary Delete pet
// @Tags pets
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /pets/{id} [delete]
func NewDeletePetHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Pet not found"})
			return
		}

		err = svc.Delete(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Pet not found"})
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Pet deleted successfully"})
		}
	}
}
