package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a map guarded by a mutex. Used in tests
// and when the server runs without a database DSN. The existence check and
// the insert share one critical section.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	r.users[user.UserName] = *user

	return user, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &user, nil
}

// Count reports the number of stored users. Test helper.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
