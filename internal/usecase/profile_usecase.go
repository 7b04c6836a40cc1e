package usecase

import (
	"context"

	"ondeta/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the optional profile fields. Nil means unchanged.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// ProfileImageInput is a raw upload. Size is the declared multipart size.
type ProfileImageInput struct {
	Data []byte
	Size int64
}

// ProfileUsecase covers the signed-in user's own account record.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UploadProfileImage(ctx context.Context, userID uuid.UUID, input *ProfileImageInput) (*entity.User, error)
}
