// Package users contains the identity service and the credential store
// implementations. The service orchestrates registration and login against
// a Repository and issues access tokens via the auth codec on success.
package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/cryptox"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/models"
)

type Service struct {
	repo  Repository
	codec *auth.Codec

	// decoy credential verified on the unknown-user login path, so a failed
	// lookup costs the same argon2 work as a wrong password and the two
	// cases stay indistinguishable from outside.
	decoySalt     []byte
	decoyVerifier []byte
}

func NewService(repo Repository, codec *auth.Codec) *Service {
	decoySalt := cryptox.NewSalt()
	return &Service{
		repo:          repo,
		codec:         codec,
		decoySalt:     decoySalt,
		decoyVerifier: cryptox.DeriveVerifier(common.GenerateRandByteArray(32), decoySalt),
	}
}

// Register creates a new identity and returns an access token for it.
// Fails with common.ErrorInvalidInput on empty fields,
// common.ErrorAlreadyExists on a duplicate username and
// common.ErrorUnavailable when the store is unreachable.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrorInvalidInput
	}

	salt := cryptox.NewSalt()
	user := &models.User{
		UserName: username,
		Salt:     salt,
		Verifier: cryptox.DeriveVerifier([]byte(password), salt),
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", common.ErrorUnavailable
	}

	token, err := s.codec.Issue(username)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Login verifies the supplied credentials and returns a fresh access token.
// Unknown username and wrong password both fail with common.ErrorUnauthorized
// and nothing else distinguishes them.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrorInvalidInput
	}

	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.VerifyPassword([]byte(password), s.decoySalt, s.decoyVerifier)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorUnavailable
	}

	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.Verifier) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.codec.Issue(user.UserName)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
