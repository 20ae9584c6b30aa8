package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/animal-shelter/internal/models"
	"github.com/sbilibin2017/animal-shelter/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListMedicalRecordsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMedicalRecordManager(ctrl)
	handler := NewListMedicalRecordsHandler(mockSvc)

	mockSvc.EXPECT().List(gomock.Any()).Return([]models.MedicalRecord{}, nil)
	rr := httptest.NewRecorder()
	handler(rr, newRequest(http.MethodGet, "/medical_records", "", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"No medical records found"}`, rr.Body.String())

	mockSvc.EXPECT().List(gomock.Any()).Return([]models.MedicalRecord{{
		TreatmentID: 3, PetID: 1, TreatmentDate: "2024-05-05", TreatmentDetails: "Vaccination", Veterinarian: "Dr. Smith",
	}}, nil)
	rr = httptest.NewRecorder()
	handler(rr, newRequest(http.MethodGet, "/medical_records", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"treatment_id":3,"pet_id":1,"treatment_date":"2024-05-05",
		"treatment_details":"Vaccination","veterinarian":"Dr. Smith"}]`, rr.Body.String())

	mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))
	rr = httptest.NewRecorder()
	handler(rr, newRequest(http.MethodGet, "/medical_records", "", ""))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCreateMedicalRecordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMedicalRecordManager(ctrl)
	handler := NewCreateMedicalRecordHandler(mockSvc)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"pet_id":1,"treatment_date":"2024-05-05","treatment_details":"Vaccination","veterinarian":"Dr. Smith"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), models.MedicalRecordInput{
					PetID:            1,
					TreatmentDate:    "2024-05-05",
					TreatmentDetails: "Vaccination",
					Veterinarian:     "Dr. Smith",
				}).Return(int64(3), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Medical record created successfully","treatment_id":3}`,
		},
		{
			name:         "missing pet id",
			body:         `{"treatment_date":"2024-05-05","treatment_details":"Vaccination","veterinarian":"Dr. Smith"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Pet ID is required and must be an integer"}`,
		},
		{
			name:         "missing treatment date",
			body:         `{"pet_id":1,"treatment_details":"Vaccination","veterinarian":"Dr. Smith"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Treatment date is required"}`,
		},
		{
			name: "numeric treatment date",
			body: `{"pet_id":1,"treatment_date":20240505,"treatment_details":"Vaccination","veterinarian":"Dr. Smith"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), models.MedicalRecordInput{
					PetID:            1,
					TreatmentDate:    "20240505",
					TreatmentDetails: "Vaccination",
					Veterinarian:     "Dr. Smith",
				}).Return(int64(4), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Medical record created successfully","treatment_id":4}`,
		},
		{
			name:         "false treatment date",
			body:         `{"pet_id":1,"treatment_date":false,"treatment_details":"Vaccination","veterinarian":"Dr. Smith"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Treatment date is required"}`,
		},
		{
			name:         "details not a string",
			body:         `{"pet_id":1,"treatment_date":"2024-05-05","treatment_details":["shot"],"veterinarian":"Dr. Smith"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Treatment details are required and must be a string"}`,
		},
		{
			name:         "missing veterinarian",
			body:         `{"pet_id":1,"treatment_date":"2024-05-05","treatment_details":"Vaccination"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Veterinarian name is required and must be a string"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}
			rr := httptest.NewRecorder()
			handler(rr, newRequest(http.MethodPost, "/medical_records", "", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestUpdateDeleteMedicalRecordHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMedicalRecordManager(ctrl)
	update := NewUpdateMedicalRecordHandler(mockSvc)
	del := NewDeleteMedicalRecordHandler(mockSvc)

	body := `{"treatment_date":"2024-06-01","treatment_details":"Booster","veterinarian":"Dr. Smith"}`
	in := models.MedicalRecordInput{TreatmentDate: "2024-06-01", TreatmentDetails: "Booster", Veterinarian: "Dr. Smith"}

	mockSvc.EXPECT().Update(gomock.Any(), int64(3), in).Return(nil)
	rr := httptest.NewRecorder()
	update(rr, newRequest(http.MethodPut, "/medical_records/3", "3", body))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Medical record updated successfully"}`, rr.Body.String())

	mockSvc.EXPECT().Update(gomock.Any(), int64(999), in).Return(services.ErrNotFound)
	rr = httptest.NewRecorder()
	update(rr, newRequest(http.MethodPut, "/medical_records/999", "999", body))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Medical record not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	update(rr, newRequest(http.MethodPut, "/medical_records/3", "3", `{"treatment_date":"2024-06-01"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Treatment details are required and must be a string"}`, rr.Body.String())

	mockSvc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
	rr = httptest.NewRecorder()
	del(rr, newRequest(http.MethodDelete, "/medical_records/3", "3", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Medical record deleted successfully"}`, rr.Body.String())

	mockSvc.EXPECT().Delete(gomock.Any(), int64(3)).Return(services.ErrNotFound)
	rr = httptest.NewRecorder()
	del(rr, newRequest(http.MethodDelete, "/medical_records/3", "3", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
