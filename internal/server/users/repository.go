// Package users provides the credential store: a lookup from username to a
// stored account record. During request handling the store is read-only;
// Create and Delete exist for fixture loading and administrative removal
// (which doubles as the only session-revocation mechanism).
package users

import (
	"context"

	"github.com/akarpov87/authgate/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, username string) error
}
