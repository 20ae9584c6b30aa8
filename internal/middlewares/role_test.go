package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRoleMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		username         string
		role             string
		roleErr          error
		expectedStatus   int
		expectNextCalled bool
	}{
		{name: "staff allowed", username: "sam", role: "staff", expectedStatus: http.StatusOK, expectNextCalled: true},
		{name: "admin allowed", username: "ada", role: "admin", expectedStatus: http.StatusOK, expectNextCalled: true},
		{name: "user forbidden", username: "uma", role: "user", expectedStatus: http.StatusForbidden},
		{name: "unknown user forbidden", username: "ghost", role: "", expectedStatus: http.StatusForbidden},
		{name: "lookup error forbidden", username: "err", role: "admin", roleErr: errors.New("boom"), expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := NewMockRoleGetter(ctrl)
			roles.EXPECT().GetRole(gomock.Any(), tt.username).Return(tt.role, tt.roleErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RoleMiddleware(roles, "staff", "admin")(next)

			req := httptest.NewRequest(http.MethodPut, "/pets/1", nil)
			req = req.WithContext(context.WithValue(req.Context(), usernameKey{}, tt.username))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"Access forbidden: insufficient permissions"}`, rr.Body.String())
			}
		})
	}
}
