package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ondeta/config"
	"ondeta/internal/domain/entity"
	"ondeta/internal/domain/repository"
	mockRepo "ondeta/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret:  "test-secret",
			BcryptCost: 4,
		},
	}
	cfg.Storage.DefaultImageURL = "https://cdn.test/default.png"
	cfg.Storage.ProfileImageMaxSize = 2 << 20
	cfg.TMDB.Region = "BR"

	return cfg
}

func newTestUser() *entity.User {
	u := entity.NewUser("Ana", "ana@example.com", "hashed", "https://cdn.test/default.png")
	u.ID = uuid.New()
	u.Version = 1

	return u
}

// expectExecute makes txManager run the callback against a factory that hands out userRepo.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		})
}
