package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/animal-shelter/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "secret", "").Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "User registered successfully"},
		},
		{
			name: "success with role",
			body: `{"username":"sam","password":"secret","role":"staff"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "sam", "secret", "staff").Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "User registered successfully"},
		},
		{
			name: "user already exists",
			body: `{"username":"alice","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "alice", "pass", "").Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "User already exists"},
		},
		{
			name:         "missing password",
			body:         `{"username":"alice"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username and password are required"},
		},
		{
			name:         "empty body",
			body:         ``,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username and password are required"},
		},
		{
			name:         "unknown role",
			body:         `{"username":"root","password":"pass","role":"superuser"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "role must be one of: user staff admin"},
		},
		{
			name:         "password too long",
			body:         `{"username":"long","password":"` + strings.Repeat("x", 73) + `"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "password must be at most 72 characters"},
		},
		{
			name: "multibyte password over the byte limit",
			body: `{"username":"ema","password":"` + strings.Repeat("é", 40) + `"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "ema", strings.Repeat("é", 40), "").Return(services.ErrPasswordTooLong)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "password must be at most 72 bytes"},
		},
		{
			name: "service rejects role",
			body: `{"username":"ida","password":"pass","role":"admin"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "ida", "pass", "admin").Return(services.ErrInvalidRole)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid role"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "bob", "pass", "").Return(errors.New("disk failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
