package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/animal-shelter/internal/jwt"
	"github.com/sbilibin2017/animal-shelter/internal/logger"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
	}{
		{name: "OK response", handlerStatus: http.StatusOK, handlerBody: `{"success":true}`},
		{name: "Not found", handlerStatus: http.StatusNotFound, handlerBody: `{"error":"Pet not found"}`},
		{name: "Internal server error", handlerStatus: http.StatusInternalServerError, handlerBody: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = GetRequestID(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/pets", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(bodyBytes))

			reqID := rr.Header().Get("X-Request-ID")
			_, err := uuid.Parse(reqID)
			assert.NoError(t, err)
			assert.Equal(t, reqID, seenID)
		})
	}
}

func TestRejectionsCarryRequestID(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)
	roles := NewMockRoleGetter(ctrl)
	roles.EXPECT().GetRole(gomock.Any(), "").Return("user", nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	for _, h := range []http.Handler{
		LoggingMiddleware(AuthMiddleware(tokener)(next)),
		LoggingMiddleware(RoleMiddleware(roles, "staff")(next)),
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/pets/1", nil))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, rr.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
	}
}
