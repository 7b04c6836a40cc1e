// Package repository declares the persistence ports. The gorm adapters live in
// internal/infra/persistence/postgres.
package repository

import (
	"context"
	"errors"

	"ondeta/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by lookups that match no row.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists the account record and its collections.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail expects an already normalized (trimmed, lowercased) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create and UpdateProfile yield ErrEmailInUse when the email is taken.
	// UpdateProfile writes name and email only.
	Create(ctx context.Context, user *entity.User) error
	UpdateProfile(ctx context.Context, user *entity.User) error
	// UpdateProfileImage writes only the two image columns.
	UpdateProfileImage(ctx context.Context, userID uuid.UUID, image entity.ProfileImage) error

	// SaveCollections writes all three collections if the stored version still
	// equals user.Version, then bumps user.Version. A stale version yields ErrVersionConflict.
	SaveCollections(ctx context.Context, user *entity.User) error
}

// TransactionManager runs fn in one database transaction, committing when fn
// returns nil and rolling back on an error or panic.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
}
