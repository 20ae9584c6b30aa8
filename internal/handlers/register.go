package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, role string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// Password, at most 72 characters
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,max=72"`

	// Role: user, staff or admin
	// default: user
	Role string `json:"role" validate:"omitempty,oneof=user staff admin"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: User already exists
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with the given role (default "user"). Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "User already exists / missing fields / invalid role"
// @Failure 500 {object} handlers.RegisterErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: invalidBody})
			return
		}

		if err := validate.Struct(req); err != nil {
			msg := "Username and password are required"
			if !hasTag(err, "required") {
				msg = validationMessage(err)
			}
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: msg})
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Password, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "User already exists"})
			case errors.Is(err, services.ErrMissingCredentials):
				writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "Username and password are required"})
			case errors.Is(err, services.ErrInvalidRole):
				writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "Invalid role"})
			case errors.Is(err, services.ErrPasswordTooLong):
				writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "password must be at most 72 bytes"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{Message: "User registered successfully"})
	}
}
