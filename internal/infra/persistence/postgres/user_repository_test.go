package postgres

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ondeta.db")+"?_busy_timeout=5000"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := entity.NewUser("Maria", email, "hash", "https://img.example/default.png")
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := createUser(t, repo, "  Maria@Example.com ")
	require.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", byID.Email)
	assert.Equal(t, entity.DefaultProfileImageID, byID.ProfileImage.PublicID)
	assert.Empty(t, byID.Favorites.Movies)
	assert.NotNil(t, byID.Favorites.Movies)
	assert.Equal(t, int64(0), byID.Version)

	byEmail, err := repo.FindByEmail(ctx, "MARIA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.UpdateProfile(ctx, &entity.User{ID: uuid.New(), Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "dup@example.com")

	err := repo.Create(context.Background(), entity.NewUser("Other", "DUP@example.com", "hash", ""))
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	first := createUser(t, repo, "first@example.com")
	second := createUser(t, repo, "second@example.com")

	first.Name = "Maria Silva"
	require.NoError(t, repo.UpdateProfile(ctx, first))

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", stored.Name)

	second.Email = "first@example.com"
	assert.ErrorIs(t, repo.UpdateProfile(ctx, second), domainerrors.ErrEmailInUse)
}

func TestUserRepository_SaveCollections(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "lists@example.com")

	addedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, user.Favorites.Add(entity.MediaKindMovie, entity.MediaEntry{ID: "603", Title: "Matrix", PosterPath: "/m.jpg", AddedAt: addedAt}))
	require.NoError(t, user.Watched.Add(entity.MediaKindTV, entity.MediaEntry{ID: "1399", Name: "Game of Thrones", AddedAt: addedAt}))
	require.NoError(t, repo.SaveCollections(ctx, user))
	assert.Equal(t, int64(1), user.Version)

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, stored.Favorites.Movies, 1)
	assert.Equal(t, "Matrix", stored.Favorites.Movies[0].Title)
	assert.True(t, stored.Favorites.Movies[0].AddedAt.Equal(addedAt))
	require.Len(t, stored.Watched.TVShows, 1)
	assert.Equal(t, "Game of Thrones", stored.Watched.TVShows[0].Name)
	assert.Empty(t, stored.Watchlist.Movies)
	assert.Equal(t, int64(1), stored.Version)
}

func TestUserRepository_SaveCollectionsRejectsStaleVersion(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "cas@example.com")

	stale, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, user.Favorites.Add(entity.MediaKindMovie, entity.MediaEntry{ID: "1"}))
	require.NoError(t, repo.SaveCollections(ctx, user))

	require.NoError(t, stale.Favorites.Add(entity.MediaKindMovie, entity.MediaEntry{ID: "2"}))
	err = repo.SaveCollections(ctx, stale)
	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
	assert.Equal(t, int64(0), stale.Version)

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, stored.Favorites.Movies, 1)
	assert.Equal(t, "1", stored.Favorites.Movies[0].ID)
}

func TestUserRepository_ConcurrentWritersOnlyOneWins(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "race@example.com")

	const writers = 4
	snapshots := make([]*entity.User, writers)
	for i := range snapshots {
		snap, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, snap.Watchlist.Add(entity.MediaKindMovie, entity.MediaEntry{ID: "550"}))
		snapshots[i] = snap
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for _, snap := range snapshots {
		wg.Add(1)
		go func(u *entity.User) {
			defer wg.Done()
			if err := repo.SaveCollections(ctx, u); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(snap)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	sentinel := assert.AnError
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, entity.NewUser("Tx", "tx@example.com", "hash", "")); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, entity.NewUser("Tx", "tx@example.com", "hash", ""))
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.UserRepo().Create(ctx, entity.NewUser("Tx", "panic@example.com", "hash", "")); err != nil {
				return err
			}
			panic("boom")
		})
	})

	_, err := NewUserRepository(db).FindByEmail(ctx, "panic@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ProfileImageAndProfileEditsDoNotClobber(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "ana@example.com")

	// A profile edit working from a copy loaded before the image upload.
	stale, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)

	image := entity.ProfileImage{PublicID: "profile_images/a.jpg", URL: "http://media/a.jpg"}
	require.NoError(t, repo.UpdateProfileImage(ctx, user.ID, image))

	stale.Name = "Ana Maria"
	require.NoError(t, repo.UpdateProfile(ctx, stale))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", stored.Name)
	assert.Equal(t, image, stored.ProfileImage)

	assert.ErrorIs(t, repo.UpdateProfileImage(ctx, uuid.New(), image), repository.ErrUserNotFound)
}
