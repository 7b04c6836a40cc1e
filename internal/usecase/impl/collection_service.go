package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ondeta/internal/delivery/context"
	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/repository"
	"ondeta/internal/domain/service"
	"ondeta/internal/usecase"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	writeAttempts   = 5
	writeRetryDelay = 10 * time.Millisecond
)

// duplicateMessages are shown when an entry is already in a list.
var duplicateMessages = map[entity.CollectionName]map[entity.MediaKind]string{
	entity.CollectionFavorites: {
		entity.MediaKindMovie: "Este filme já está nos favoritos",
		entity.MediaKindTV:    "Esta série já está nos favoritos",
	},
	entity.CollectionWatchlist: {
		entity.MediaKindMovie: "Este filme já está na lista de assistir mais tarde",
		entity.MediaKindTV:    "Esta série já está na lista de assistir mais tarde",
	},
	entity.CollectionWatched: {
		entity.MediaKindMovie: "Este filme já está marcado como assistido",
		entity.MediaKindTV:    "Esta série já está marcada como assistida",
	},
}

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	userRepo repository.UserRepository
	metrics  service.MetricsRecorder
	now      func() time.Time
	logger   *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Metrics  service.MetricsRecorder `optional:"true"`
	Logger   *slog.Logger
}

// NewCollectionService creates a new collection service.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &collectionService{
		userRepo: params.UserRepo,
		metrics:  metrics,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns both partitions of the named collection.
func (srv *collectionService) List(ctx context.Context, userID uuid.UUID, name entity.CollectionName) (entity.Collection, error) {
	user, err := loadUser(ctx, srv.userRepo, userID)
	if err != nil {
		return entity.Collection{}, err
	}

	coll := user.Collection(name)
	if coll == nil {
		return entity.Collection{}, errors.Errorf("unknown collection %q", name)
	}

	return coll.Clone(), nil
}

// Add snapshots the entry into the collection. The addedAt timestamp is always the server's.
func (srv *collectionService) Add(ctx context.Context, userID uuid.UUID, input *usecase.AddEntryInput) (entity.Collection, error) {
	if input.ID == "" || input.MediaType == "" {
		return entity.Collection{}, domainerrors.ErrMissingMediaFields
	}

	kind, err := entity.ParseMediaKind(input.MediaType)
	if err != nil {
		return entity.Collection{}, domainerrors.ErrMissingMediaFields
	}

	// Movies carry a title, tv shows a name; the other field is dropped.
	entry := entity.MediaEntry{ID: input.ID, PosterPath: input.PosterPath}
	if kind == entity.MediaKindMovie {
		entry.Title = input.Title
	} else {
		entry.Name = input.Name
	}

	coll, err := srv.mutate(ctx, userID, input.Collection, func(c *entity.Collection) (bool, error) {
		entry.AddedAt = srv.now().UTC()
		if err := c.Add(kind, entry); err != nil {
			return false, domainerrors.ErrDuplicateEntry.WithMessage(duplicateMessages[input.Collection][kind])
		}

		return true, nil
	})
	if err != nil {
		return entity.Collection{}, err
	}

	srv.metrics.RecordCollectionChange(string(input.Collection), "add")
	srv.log(ctx).Debug("Collection entry added",
		slog.Any("userID", userID),
		slog.String("collection", string(input.Collection)),
		slog.String("mediaType", string(kind)),
		slog.String("id", input.ID))

	return coll, nil
}

// Remove drops the entry. Removing something that is not there succeeds without a write.
func (srv *collectionService) Remove(ctx context.Context, userID uuid.UUID, input *usecase.RemoveEntryInput) (entity.Collection, error) {
	kind, err := entity.ParseMediaKind(input.MediaType)
	if err != nil {
		return entity.Collection{}, err
	}

	coll, err := srv.mutate(ctx, userID, input.Collection, func(c *entity.Collection) (bool, error) {
		return c.Remove(kind, input.ID), nil
	})
	if err != nil {
		return entity.Collection{}, err
	}

	srv.metrics.RecordCollectionChange(string(input.Collection), "remove")

	return coll, nil
}

// mutate is a read-modify-write loop guarded by the user version.
// A lost race re-reads the user and re-applies change, so checks like
// duplicate detection always run against the latest stored state.
func (srv *collectionService) mutate(
	ctx context.Context,
	userID uuid.UUID,
	name entity.CollectionName,
	change func(*entity.Collection) (bool, error),
) (entity.Collection, error) {
	var result entity.Collection

	err := retry.Do(
		func() error {
			user, err := loadUser(ctx, srv.userRepo, userID)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			coll := user.Collection(name)
			if coll == nil {
				return retry.Unrecoverable(errors.Errorf("unknown collection %q", name))
			}

			changed, err := change(coll)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if !changed {
				result = coll.Clone()

				return nil
			}

			if err := srv.userRepo.SaveCollections(ctx, user); err != nil {
				if errors.Is(err, domainerrors.ErrVersionConflict) {
					srv.metrics.RecordWriteConflict()

					return err
				}

				return retry.Unrecoverable(translateRepoError(err, "failed to save collections"))
			}

			result = coll.Clone()

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(writeAttempts),
		retry.Delay(writeRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, domainerrors.ErrVersionConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			srv.log(ctx).Debug("Collection write conflict, retrying",
				slog.Any("userID", userID),
				slog.Uint64("attempt", uint64(n+1)))
		}),
	)
	if err != nil {
		return entity.Collection{}, err
	}

	return result, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordCollectionChange(string, string) {}
func (noopMetrics) RecordWriteConflict() {}
func (noopMetrics) RecordProviderCall(string, error, time.Duration) {}
