package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/models"
)

var (
	// ErrUserExists is returned by Create when the username is already taken.
	ErrUserExists = models.ErrUserExists
	// ErrUserNotFound is returned when a mutation targets an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

// Storage persists the serialized credential mapping as a whole.
type Storage interface {
	Load(ctx context.Context) ([]byte, error) // Returns nil data when nothing was saved yet
	Save(ctx context.Context, data []byte) error
}

// CredentialRepository keeps username -> credential records in memory and
// rewrites the backing storage after every mutation. The mutex is held across
// mutate and save, so concurrent requests cannot lose updates.
type CredentialRepository struct {
	mu      sync.RWMutex
	storage Storage
	users   map[string]models.User
}

// NewCredentialRepository creates an empty repository over the given storage.
// Call Load to read previously persisted records.
func NewCredentialRepository(storage Storage) *CredentialRepository {
	return &CredentialRepository{
		storage: storage,
		users:   make(map[string]models.User),
	}
}

// Load replaces the in-memory mapping with the persisted one.
// Missing state yields an empty mapping.
func (r *CredentialRepository) Load(ctx context.Context) error {
	data, err := r.storage.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load credentials", "error", err)
		return err
	}

	users := make(map[string]models.User)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &users); err != nil {
			return fmt.Errorf("decode credentials: %w", err)
		}
	}
	for username, u := range users {
		u.Username = username
		users[username] = u
	}

	r.mu.Lock()
	r.users = users
	r.mu.Unlock()

	logger.Log.Infow("credentials loaded", "users", len(users))
	return nil
}

// GetByUsername returns a copy of the user record, or nil if there is none.
func (r *CredentialRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetRole returns the role of the user, or an empty string if the user is unknown.
func (r *CredentialRepository) GetRole(ctx context.Context, username string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users[username].Role, nil
}

// Create adds a new user and persists the mapping.
func (r *CredentialRepository) Create(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return ErrUserExists
	}

	r.users[user.Username] = user
	if err := r.persist(ctx); err != nil {
		delete(r.users, user.Username)
		return err
	}
	return nil
}

// SaveToken caches a session token on the user record and persists the mapping.
func (r *CredentialRepository) SaveToken(ctx context.Context, username, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return ErrUserNotFound
	}

	prev := u.Token
	u.Token = token
	r.users[username] = u
	if err := r.persist(ctx); err != nil {
		u.Token = prev
		r.users[username] = u
		return err
	}
	return nil
}

// persist writes the full snapshot. Callers must hold the write lock.
func (r *CredentialRepository) persist(ctx context.Context) error {
	data, err := json.Marshal(r.users)
	if err != nil {
		return err
	}

	err = r.storage.Save(ctx, data)

	logger.Log.Infow(
		"credentials saved",
		"users", len(r.users),
		"bytes", len(data),
		"error", err,
	)

	return err
}
