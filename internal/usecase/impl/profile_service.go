package impl

import (
	"context"
	"log/slog"
	"strings"

	"ondeta/config"
	deliverycontext "ondeta/internal/delivery/context"
	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/repository"
	"ondeta/internal/domain/service"
	"ondeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const profileImagePrefix = "profile_images/"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	storage      service.ImageStorage
	processor    service.ImageProcessor
	maxImageSize int64
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Storage   service.ImageStorage
	Processor service.ImageProcessor
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		storage:      params.Storage,
		processor:    params.Processor,
		maxImageSize: params.Config.Storage.ProfileImageMaxSize,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the stored account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return loadUser(ctx, srv.userRepo, userID)
}

// UpdateProfile changes name and email. Moving to an address owned by another account fails.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := validateEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := loadUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}

		if input.Email != nil {
			email := entity.NormalizeEmail(*input.Email)
			if email != user.Email {
				owner, findErr := userRepo.FindByEmail(ctx, email)
				switch {
				case findErr == nil && owner.ID != user.ID:
					return domainerrors.ErrEmailInUse
				case findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound):
					return domainerrors.NewDatabaseExecuteError(findErr, "failed to check email")
				}
				user.Email = email
			}
		}

		if err := userRepo.UpdateProfile(ctx, user); err != nil {
			return translateRepoError(err, "failed to update profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// UploadProfileImage stores a new avatar and then drops the previous one unless it is the placeholder.
func (srv *profileService) UploadProfileImage(ctx context.Context, userID uuid.UUID, input *usecase.ProfileImageInput) (*entity.User, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, domainerrors.ErrMissingFile
	}
	if !srv.processor.IsImage(input.Data) {
		return nil, domainerrors.ErrInvalidImage
	}
	if srv.maxImageSize > 0 && (input.Size > srv.maxImageSize || int64(len(input.Data)) > srv.maxImageSize) {
		return nil, domainerrors.ErrImageTooLarge
	}

	user, err := loadUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	avatar, contentType, err := srv.processor.Avatar(input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to process profile image")
	}

	key := profileImagePrefix + uuid.NewString() + ".jpg"
	stored, err := srv.storage.Upload(ctx, key, avatar, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store profile image", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrImageStoreFailed.WithDetails(err.Error())
	}

	previous := user.ProfileImage
	image := entity.ProfileImage{PublicID: stored.PublicID, URL: stored.URL}

	if err := srv.userRepo.UpdateProfileImage(ctx, userID, image); err != nil {
		srv.discardImage(ctx, stored.PublicID)

		return nil, translateRepoError(err, "failed to save profile image")
	}

	user.ProfileImage = image
	if !previous.IsDefault() {
		srv.discardImage(ctx, previous.PublicID)
	}

	srv.log(ctx).Info("Profile image updated", slog.Any("userID", userID), slog.String("publicID", stored.PublicID))

	return user, nil
}

// discardImage deletes an orphaned image. Failures only leave garbage in the bucket.
func (srv *profileService) discardImage(ctx context.Context, publicID string) {
	if err := srv.storage.Delete(ctx, publicID); err != nil {
		srv.log(ctx).Warn("Failed to delete profile image", slog.String("publicID", publicID), slog.Any("error", err))
	}
}

func loadUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user by id")
	}

	return user, nil
}

// translateRepoError keeps domain errors as they are and marks everything else as a database failure.
func translateRepoError(err error, details string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, domainerrors.ErrEmailInUse), errors.Is(err, domainerrors.ErrVersionConflict):
		return err
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
