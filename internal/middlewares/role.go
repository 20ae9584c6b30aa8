package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/metrics"
)

//go:generate mockgen -source=role.go -destination=role_mock.go -package=middlewares

// RoleGetter looks up the role of a user in the credential store.
type RoleGetter interface {
	GetRole(ctx context.Context, username string) (string, error)
}

// RoleMiddleware allows the request through only if the user bound by
// AuthMiddleware holds one of the allowed roles.
func RoleMiddleware(roles RoleGetter, allowed ...string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			username := GetUsername(ctx)

			role, err := roles.GetRole(ctx, username)
			if err != nil {
				logger.Log.Errorw("failed to get role", "username", username, "err", err)
			}

			if _, ok := allowedSet[role]; !ok || err != nil {
				logger.Log.Errorw("access forbidden",
					"request_id", GetRequestID(ctx), "username", username, "role", role)
				metrics.AuthRejectionsTotal.WithLabelValues(metrics.ReasonForbidden).Inc()
				writeError(w, http.StatusForbidden, "Access forbidden: insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
