package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/server/models"
)

// MemoryRepository is a thread-safe in-memory user store with uniqueness
// indexes on email and username. The duplicate check and the insert run
// under one lock, so two concurrent registrations with the same email
// cannot both succeed.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*models.User
	byEmail    map[string]string
	byUserName map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[string]*models.User),
		byEmail:    make(map[string]string),
		byUserName: make(map[string]string),
	}
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Salt = append([]byte(nil), u.Salt...)
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorDuplicateEmail
	}
	if _, ok := r.byUserName[user.UserName]; ok {
		return nil, common.ErrorDuplicateUsername
	}

	stored := copyUser(user)
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID
	r.byUserName[stored.UserName] = stored.ID

	return copyUser(stored), nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyUser(r.byID[id]), nil
}

func (r *MemoryRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUserName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyUser(r.byID[id]), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyUser(user), nil
}
