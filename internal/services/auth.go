package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	ErrInvalidRole        = fmt.Errorf("%w: unknown role", ErrInvalidInput)
	ErrPasswordTooLong    = fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordBytes)
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.User) error
	SaveToken(ctx context.Context, username, token string) error
}

// TokenProvider issues tokens and checks cached ones.
type TokenProvider interface {
	Generate(ctx context.Context, username string) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenProvider
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenProvider) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	switch role {
	case models.RoleUser, models.RoleStaff, models.RoleAdmin:
		return true
	}
	return false
}

// Register registers a new user. An empty role defaults to "user".
func (svc *AuthService) Register(ctx context.Context, username, password, role string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	if role == "" {
		role = models.RoleUser
	}
	if !IsValidRole(role) {
		return ErrInvalidRole
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	err = svc.writer.Create(ctx, models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	})
	if errors.Is(err, models.ErrUserExists) {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	logger.Log.Infow("user registered", "username", username, "role", role)
	return nil
}

// Login authenticates a user and returns a session token. The token cached on
// the user record is reused while it is still valid; otherwise a new one is
// issued and cached.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	if user.Token != "" {
		if err := svc.tokens.Validate(ctx, user.Token); err == nil {
			return user.Token, nil
		}
		logger.Log.Infow("cached token no longer valid, issuing a new one", "username", username)
	}

	token, err := svc.tokens.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.writer.SaveToken(ctx, username, token); err != nil {
		logger.Log.Errorw("failed to cache token", "username", username, "err", err)
		return "", err
	}

	return token, nil
}
