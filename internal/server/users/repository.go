package users

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Repository is the credential store abstraction. Implementations must make
// Create atomic with respect to the username uniqueness check, so two
// concurrent registrations of the same name cannot both succeed.
type Repository interface {
	// Create inserts a new user and returns it with ID and CreatedAt set.
	// Returns common.ErrorAlreadyExists when the username is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns the user with the given username, or
	// common.ErrorNotFound.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
