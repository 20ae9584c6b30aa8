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

func TestListAdoptionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdoptionManager(ctrl)
	handler := NewListAdoptionsHandler(mockSvc)

	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Adoption{}, nil)
	rr := httptest.NewRecorder()
	handler(rr, newRequest(http.MethodGet, "/adoptions", "", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"No adoptions found"}`, rr.Body.String())

	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Adoption{{
		AdoptionID: 1, PetID: 2, FirstName: "Ann", LastName: "Lee", AdoptionDate: "2024-03-01",
	}}, nil)
	rr = httptest.NewRecorder()
	handler(rr, newRequest(http.MethodGet, "/adoptions", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"adoption_id":1,"pet_id":2,"first_name":"Ann","last_name":"Lee",
		"address":null,"email":null,"phone":null,"adoption_date":"2024-03-01","date_returned":null}]`, rr.Body.String())
}

func TestCreateAdoptionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdoptionManager(ctrl)
	handler := NewCreateAdoptionHandler(mockSvc)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"pet_id":2,"first_name":"Ann","last_name":"Lee","email":"ann@example.com","adoption_date":"2024-03-01"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), models.AdoptionInput{
					PetID:        2,
					FirstName:    "Ann",
					LastName:     "Lee",
					Email:        strPtr("ann@example.com"),
					AdoptionDate: strPtr("2024-03-01"),
				}).Return(int64(7), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Adoption created successfully","adoption_id":7}`,
		},
		{
			name:         "empty body",
			body:         ``,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Pet ID is required and must be an integer"}`,
		},
		{
			name:         "pet id as string",
			body:         `{"pet_id":"2","first_name":"Ann","last_name":"Lee","adoption_date":"2024-03-01"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Pet ID is required and must be an integer"}`,
		},
		{
			name:         "pet id as float",
			body:         `{"pet_id":2.5,"first_name":"Ann","last_name":"Lee","adoption_date":"2024-03-01"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Pet ID is required and must be an integer"}`,
		},
		{
			name:         "first name not a string",
			body:         `{"pet_id":2,"first_name":5,"last_name":"Lee","adoption_date":"2024-03-01"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"First name is required and must be a string"}`,
		},
		{
			name:         "missing last name",
			body:         `{"pet_id":2,"first_name":"Ann","adoption_date":"2024-03-01"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Last name is required and must be a string"}`,
		},
		{
			name:         "missing adoption date",
			body:         `{"pet_id":2,"first_name":"Ann","last_name":"Lee"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Adoption date is required"}`,
		},
		{
			name: "numeric adoption date and phone",
			body: `{"pet_id":2,"first_name":"Ann","last_name":"Lee","phone":5551234,"adoption_date":20240101}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), models.AdoptionInput{
					PetID:        2,
					FirstName:    "Ann",
					LastName:     "Lee",
					Phone:        strPtr("5551234"),
					AdoptionDate: strPtr("20240101"),
				}).Return(int64(8), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Adoption created successfully","adoption_id":8}`,
		},
		{
			name:         "numeric adoption date still checks names first",
			body:         `{"pet_id":2,"first_name":5,"last_name":"Lee","adoption_date":20240101}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"First name is required and must be a string"}`,
		},
		{
			name:         "zero adoption date",
			body:         `{"pet_id":2,"first_name":"Ann","last_name":"Lee","adoption_date":0}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Adoption date is required"}`,
		},
		{
			name:         "address as object",
			body:         `{"pet_id":2,"first_name":"Ann","last_name":"Lee","address":{"city":"Oslo"},"adoption_date":"2024-03-01"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name: "store error",
			body: `{"pet_id":2,"first_name":"Ann","last_name":"Lee","adoption_date":"not a date"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("invalid input syntax for type date"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Database error","details":"invalid input syntax for type date"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}
			rr := httptest.NewRecorder()
			handler(rr, newRequest(http.MethodPost, "/adoptions", "", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestUpdateAdoptionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdoptionManager(ctrl)
	handler := NewUpdateAdoptionHandler(mockSvc)

	tests := []struct {
		name         string
		id           string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "updated",
			id:   "7",
			body: `{"pet_id":99,"first_name":"Ann","last_name":"Smith","phone":"555"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), int64(7), models.AdoptionInput{
					FirstName: "Ann",
					LastName:  "Smith",
					Phone:     strPtr("555"),
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Adoption updated successfully"}`,
		},
		{
			name: "boolean date returned",
			id:   "7",
			body: `{"first_name":"Ann","last_name":"Smith","date_returned":false}`,
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), int64(7), models.AdoptionInput{
					FirstName:    "Ann",
					LastName:     "Smith",
					DateReturned: strPtr("false"),
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Adoption updated successfully"}`,
		},
		{
			name:         "missing first name",
			id:           "7",
			body:         `{"last_name":"Smith"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"First name is required and must be a string"}`,
		},
		{
			name: "not found",
			id:   "999",
			body: `{"first_name":"Ann","last_name":"Smith"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), int64(999), gomock.Any()).Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Adoption not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}
			rr := httptest.NewRecorder()
			handler(rr, newRequest(http.MethodPut, "/adoptions/"+tt.id, tt.id, tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteAdoptionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdoptionManager(ctrl)
	handler := NewDeleteAdoptionHandler(mockSvc)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
	rr := httptest.NewRecorder()
	handler(rr, newRequest(http.MethodDelete, "/adoptions/7", "7", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Adoption deleted successfully"}`, rr.Body.String())

	mockSvc.EXPECT().Delete(gomock.Any(), int64(7)).Return(services.ErrNotFound)
	rr = httptest.NewRecorder()
	handler(rr, newRequest(http.MethodDelete, "/adoptions/7", "7", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Adoption not found"}`, rr.Body.String())
}
