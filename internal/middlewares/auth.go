package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/animal-shelter/internal/jwt"
	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/metrics"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

type usernameKey struct{}

// AuthMiddleware returns a middleware that validates the token carried in the
// Authorization header and binds its username to the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				rejectToken(w, r, err)
				return
			}

			username, err := tokener.GetUsername(ctx, tokenString)
			if err != nil {
				rejectToken(w, r, err)
				return
			}

			ctx = context.WithValue(ctx, usernameKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUsername returns the username bound by AuthMiddleware, or "" if absent.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey{}).(string)
	return username
}

func rejectToken(w http.ResponseWriter, r *http.Request, err error) {
	reason, message := metrics.ReasonInvalid, "Invalid token"
	switch {
	case errors.Is(err, jwt.ErrTokenMissing):
		reason, message = metrics.ReasonMissing, "Token is missing"
	case errors.Is(err, jwt.ErrTokenExpired):
		reason, message = metrics.ReasonExpired, "Token has expired"
	}

	logger.Log.Errorw("authorization failed",
		"request_id", GetRequestID(r.Context()), "reason", reason, "err", err)
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	writeError(w, http.StatusUnauthorized, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
