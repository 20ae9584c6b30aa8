package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/sbilibin2017/animal-shelter/internal/services"
)

//go:generate mockgen -source=medical_records.go -destination=medical_records_mock.go -package=handlers

// MedicalRecordManager defines the medical record operations used by the handlers.
type MedicalRecordManager interface {
	List(ctx context.Context) ([]models.MedicalRecord, error)
	Create(ctx context.Context, in models.MedicalRecordInput) (int64, error)
	Update(ctx context.Context, id int64, in models.MedicalRecordInput) error
	Delete(ctx context.Context, id int64) error
}

// MedicalRecordRequest is the body of medical record create and update.
// pet_id is ignored on update.
// swagger:model MedicalRecordRequest
type MedicalRecordRequest struct {
	// required: true
	PetID any `json:"pet_id" swaggertype:"integer" example:"1"`
	// required: true
	TreatmentDate any `json:"treatment_date" swaggertype:"string" example:"2024-05-05"`
	// required: true
	TreatmentDetails any `json:"treatment_details" swaggertype:"string" example:"Vaccination"`
	// required: true
	Veterinarian any `json:"veterinarian" swaggertype:"string" example:"Dr. Smith"`
}

// MedicalRecordCreatedResponse carries the id of a created record.
// swagger:model MedicalRecordCreatedResponse
type MedicalRecordCreatedResponse struct {
	// default: Medical record created successfully
	Message     string `json:"message"`
	TreatmentID int64  `json:"treatment_id"`
}

// treatment checks date, details and veterinarian in that order.
func (req MedicalRecordRequest) treatment() (models.MedicalRecordInput, string) {
	if !presentField(req.TreatmentDate) {
		return models.MedicalRecordInput{}, "Treatment date is required"
	}
	date, ok := textField(req.TreatmentDate)
	if !ok {
		return models.MedicalRecordInput{}, invalidBody
	}
	details, ok := stringField(req.TreatmentDetails)
	if !ok {
		return models.MedicalRecordInput{}, "Treatment details are required and must be a string"
	}
	vet, ok := stringField(req.Veterinarian)
	if !ok {
		return models.MedicalRecordInput{}, "Veterinarian name is required and must be a string"
	}
	return models.MedicalRecordInput{
		TreatmentDate:    *date,
		TreatmentDetails: details,
		Veterinarian:     vet,
	}, ""
}

// NewListMedicalRecordsHandler returns an HTTP handler listing medical records as a bare array.
// @Summary List medical records
// @Tags medical_records
// @Produce json
// @Success 200 {array} models.MedicalRecord
// @Failure 404 {object} handlers.ErrorResponse "No medical records found"
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /medical_records [get]
func NewListMedicalRecordsHandler(svc MedicalRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.List(r.Context())
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		if len(records) == 0 {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "No medical records found"})
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// NewCreateMedicalRecordHandler returns an HTTP handler recording a treatment.
// @Summary Create medical record
// @Tags medical_records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param record body handlers.MedicalRecordRequest true "Medical record"
// @Success 201 {object} handlers.MedicalRecordCreatedResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /medical_records [post]
func NewCreateMedicalRecordHandler(svc MedicalRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MedicalRecordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}

		petID, ok := integerField(req.PetID)
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Pet ID is required and must be an integer"})
			return
		}
		in, msg := req.treatment()
		if msg != "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
			return
		}
		in.PetID = petID

		id, err := svc.Create(r.Context(), in)
		if err != nil {
			writeDatabaseError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, MedicalRecordCreatedResponse{
			Message:     "Medical record created successfully",
			TreatmentID: id,
		})
	}
}

// NewUpdateMedicalRecordHandler returns an HTTP handler replacing a medical record's fields.
// @Summary Update medical record
// @Tags medical_records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Treatment ID"
// @Param record body handlers.MedicalRecordRequest true "Medical record"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Medical record not found"
// @Failure 500 {object} handlers.DatabaseErrorResponse
// @Router /medical_records/{id} [put]
func NewUpdateMedicalRecordHandler(svc MedicalRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Medical record not found"})
			return
		}

		var req MedicalRecordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalidBody})
			return
		}
		in, msg := req.treatment()
		if msg != "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
			return
		}

		err = svc.Update(r.Context(), id, in)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Medical record not found"})
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Medical record updated successfully"})
		}
	}
}

// NewDeleteMedicalRecordHandler returns an HTTP handler deleting a medical record.
// @Summary Delete medical record
// @Tags medical_records
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Treatment ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Medical record not found"
// @Router /medical_records/{id} [delete]
func NewDeleteMedicalRecordHandler(svc MedicalRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Medical record not found"})
			return
		}

		err = svc.Delete(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Medical record not found"})
		case err != nil:
			writeDatabaseError(w, err)
		default:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Medical record deleted successfully"})
		}
	}
}
