// Package sessions contains the login core: credential verification, token
// issuance and token resolution. Sessions are stateless; the signed token a
// client holds is the entire session state.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/akarpov87/authgate/internal/common"
	"github.com/akarpov87/authgate/internal/server/auth"
	"github.com/akarpov87/authgate/internal/server/config"
	"github.com/akarpov87/authgate/internal/server/models"
	"github.com/akarpov87/authgate/internal/server/users"
)

type Service struct {
	repo      users.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
	leeway    time.Duration
}

func NewService(repo users.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
		leeway:    cfg.ClockSkewLeeway,
	}
}

// TokenTTL is the configured session lifetime; the session cookie carries
// the same value as its max-age.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Authenticate verifies the username/password pair against the store.
// An unknown username and a wrong password both return
// common.ErrorUnauthorized; the caller cannot tell which part was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// IssueToken mints a signed session token for an authenticated user.
func (s *Service) IssueToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.Username, s.jwtSecret, s.tokenTTL)
}

// Resolve validates a presented token and looks its subject up in the store
// again. The record is never cached in the token beyond the username, so a
// deleted user immediately invalidates their still-unexpired tokens
// (common.ErrUnknownUser).
func (s *Service) Resolve(ctx context.Context, tokenString string) (*models.User, error) {
	username, err := auth.GetUsernameFromToken(tokenString, s.jwtSecret, s.leeway)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownUser
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
