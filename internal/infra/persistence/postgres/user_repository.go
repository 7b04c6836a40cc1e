// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/repository"
	"ondeta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their normalized email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and writes the generated id and timestamps back to the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailInUse
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile writes the mutable profile fields. Collections and version are untouched.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"email":      entity.NormalizeEmail(user.Email),
			"updated_at": now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailInUse
		}

		return errors.Wrap(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// UpdateProfileImage leaves name, email and collections untouched so a
// concurrent profile edit is not overwritten.
func (repo *userRepository) UpdateProfileImage(ctx context.Context, userID uuid.UUID, image entity.ProfileImage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"profile_image_public_id": image.PublicID,
			"profile_image_url":       image.URL,
			"updated_at":              time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SaveCollections performs a compare-and-swap on the version column.
func (repo *userRepository) SaveCollections(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	next := user.Version + 1

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND version = ?", user.ID, user.Version).
		Updates(map[string]any{
			"favorites":  toCollectionColumn(user.Favorites),
			"watchlist":  toCollectionColumn(user.Watchlist),
			"watched":    toCollectionColumn(user.Watched),
			"version":    next,
			"updated_at": now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save collections")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVersionConflict
	}

	user.Version = next
	user.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		ProfileImage: entity.ProfileImage{
			PublicID: data.ProfileImagePublicID,
			URL:      data.ProfileImageURL,
		},
		Favorites: toCollectionDomain(data.Favorites),
		Watchlist: toCollectionDomain(data.Watchlist),
		Watched:   toCollectionDomain(data.Watched),
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                   user.ID,
		Name:                 user.Name,
		Email:                entity.NormalizeEmail(user.Email),
		PasswordHash:         user.PasswordHash,
		ProfileImagePublicID: user.ProfileImage.PublicID,
		ProfileImageURL:      user.ProfileImage.URL,
		Favorites:            toCollectionColumn(user.Favorites),
		Watchlist:            toCollectionColumn(user.Watchlist),
		Watched:              toCollectionColumn(user.Watched),
		Version:              user.Version,
	}
}

func toCollectionDomain(col model.CollectionColumn) entity.Collection {
	c := entity.NewCollection()
	for _, doc := range col.Movies {
		c.Movies = append(c.Movies, toEntryDomain(doc))
	}
	for _, doc := range col.TVShows {
		c.TVShows = append(c.TVShows, toEntryDomain(doc))
	}

	return c
}

func toCollectionColumn(c entity.Collection) model.CollectionColumn {
	col := model.CollectionColumn{
		Movies:  make([]model.EntryDocument, 0, len(c.Movies)),
		TVShows: make([]model.EntryDocument, 0, len(c.TVShows)),
	}
	for _, e := range c.Movies {
		col.Movies = append(col.Movies, fromEntryDomain(e))
	}
	for _, e := range c.TVShows {
		col.TVShows = append(col.TVShows, fromEntryDomain(e))
	}

	return col
}

func toEntryDomain(doc model.EntryDocument) entity.MediaEntry {
	return entity.MediaEntry{
		ID:         doc.ID,
		Title:      doc.Title,
		Name:       doc.Name,
		PosterPath: doc.PosterPath,
		AddedAt:    doc.AddedAt,
	}
}

func fromEntryDomain(e entity.MediaEntry) model.EntryDocument {
	return model.EntryDocument{
		ID:         e.ID,
		Title:      e.Title,
		Name:       e.Name,
		PosterPath: e.PosterPath,
		AddedAt:    e.AddedAt,
	}
}
