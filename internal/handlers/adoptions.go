package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/sbilibin2017/animal-shelter/internal/services"
)

//go:generate mockgen -source=adoptions.go -destination=adoptions_mock.go -package=handlers

// AdoptionManager defines the adoption operations used by the handlers.
type AdoptionManager interface {
	List(ctx context.Context) ([]models.Adoption, error)
	Create(ctx context.Context, in models.AdoptionInput) (int64, error)
	Update(ctx context.Context, id int64, in models.AdoptionInput) error
	Delete(ctx context.Context, id int64) error
}

// AdoptionRequest is the body of adoption create and update. pet_id is
// ignored on update.
// swagger:model AdoptionRequest
type AdoptionRequest struct {
	// required: true
	PetID any `json:"pet_id" swaggertype:"integer" example:"1"`
	// required: true
	FirstName any `json:"first_name" swaggertype:"string" example:"Ann"`
	// required: true
	LastName     any `json:"last_name" swaggertype:"string" example:"Lee"`
	Address      any `json:"address" swaggertype:"string"`
	Email        any `json:"email" swaggertype:"string"`
	Phone        any `json:"phone" swaggertype:"string"`
	AdoptionDate any `json:"adoption_date" swaggertype:"string" example:"2024-03-01"`
	DateReturned any `json:"date_returned" swaggertype:"string"`
}

// AdoptionCreatedResponse carries the id of a created adoption.
// swagger:model AdoptionCreatedResponse
type AdoptionCreatedResponse struct {
	// default: Adoption created successfully
	Message    string `json:"message"`
	AdoptionID int64  `json:"adoption_id"`
}

// names checks first and last name in that order.
func (req AdoptionRequest) names() (first, last, msg string) {
	first, ok := stringField(req.FirstName)
	if !ok {
		return "", "", "First name is required and must be a string"
	}
	last, ok = stringField(req.LastName)
	if !ok {
		return "", "", "Last name is required and must be a string"
	}
	return first, last, ""
}

// input converts the optional fields to text. It fails when one of them is
// an object or an array.
func (req AdoptionRequest) input(petID int64, first, last string) (models.AdoptionInput, bool) {
	in := models.AdoptionInput{PetID: petID, FirstName: first, LastName: last}
	for _, f := range []struct {
		dst **string
		v   any
	}{
		{&in.Address, req.Address},
		{&in.Email, req.Email},
		{&in.Phone, req.Phone},
		{&in.AdoptionDate, req.AdoptionDate},
		{&in.DateReturned, req.DateReturned},
	} {
		text, ok := textField(f.v)
		if !ok {
			return models.AdoptionInput{}, false
		}
		*f.dst = text
	}
	return in, true
}

// NewListAdoptionsHandler returns an HTTP handler listing adoptions as a bare array.
// @Summary List adoptions
// @Tags adoptions
// @Produce json
// @Success 200 {array} models.Adoption
// @Failure 404 {object} handlers.ErrorResponse "No adoptions found"
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /adoptions [get]
func NewListAdoptionsHandler(svc AdoptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adoptions, err := svc.List(r.Context())
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		if len(adoptions) == 0 {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "No adoptions found"})
			return
		}
		writeJSON(w, http.StatusOK, adoptions)
	}
}

// NewCreateAdoptionHandler returns an HTTP handler recording an adoption.
// The pet is not checked for existence.
// @Summary Create adoption
// @Tags adoptions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param adoption body handlers.AdoptionRequest true "Adoption"
// @Success 201 {object} handlers.AdoptionCreatedResponse
// @Failure 400 {object} handlers.ErrorResponse "Pet ID is required and must be an integer"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /adoptions [post]
func NewCreateAdoptionHandler(svc AdoptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdoptionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}

		petID, ok := integerField(req.PetID)
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Pet ID is required and must be an integer"})
			return
		}
		first, last, msg := req.names()
		if msg != "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
			return
		}
		if !presentField(req.AdoptionDate) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Adoption date is required"})
			return
		}
		in, ok := req.input(petID, first, last)
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}

		id, err := svc.Create(r.Context(), in)
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, AdoptionCreatedResponse{
			Message:    "Adoption created successfully",
			AdoptionID: id,
		})
	}
}

// NewUpdateAdoptionHandler returns an HTTP handler replacing an adoption's
// fields. An omitted adoption_date keeps the stored one.
// @Summary Update adoption
// @Tags adoptions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Adoption ID"
// @Param adoption body handlers.AdoptionRequest true "Adoption"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Adoption not found"
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /adoptions/{id} [put]
func NewUpdateAdoptionHandler(svc AdoptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Adoption not found"})
			return
		}

		var req AdoptionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}
		first, last, msg := req.names()
		if msg != "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
			return
		}

		in, ok := req.input(0, first, last)
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}

		err = svc.Update(r.Context(), id, in)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Adoption not found"})
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Adoption updated successfully"})
		}
	}
}

// NewDeleteAdoptionHandler returns an HTTP handler deleting an adoption.
// @Summary Delete adoption
// @Tags adoptions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Adoption ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Adoption not found"
// @Router /adoptions/{id} [delete]
func NewDeleteAdoptionHandler(svc AdoptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Adoption not found"})
			return
		}

		err = svc.Delete(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Adoption not found"})
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Adoption deleted successfully"})
		}
	}
}
