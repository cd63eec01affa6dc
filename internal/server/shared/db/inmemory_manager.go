package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authgate/internal/server/users"
)

// InMemoryRepositoryManager backs the credential store with process memory.
// Used in tests and when no database DSN is configured.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}
