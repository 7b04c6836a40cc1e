package impl

import (
	"context"
	"testing"

	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/repository"
	"ondeta/internal/domain/service"
	mockRepo "ondeta/internal/mocks/repository"
	mockSvc "ondeta/internal/mocks/service"
	"ondeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "  Ana  ", Email: "Ana@Example.com", Password: "secret1"}

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	expectExecute(t, fx.txManager, fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(mock.AnythingOfType("uuid.UUID")).Return("jwt-token", nil)

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.True(t, out.User.ProfileImage.IsDefault())
	assert.Equal(t, "https://cdn.test/default.png", out.User.ProfileImage.URL)
	assert.Empty(t, out.User.Favorites.Movies)
	assert.NotNil(t, out.User.Watched.TVShows)
}

func TestAuthService_Register_EmailInUse(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	expectExecute(t, fx.txManager, fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(newTestUser(), nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestAuthService_Register_DuplicateOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	expectExecute(t, fx.txManager, fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrEmailInUse)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestAuthService_Register_Validation(t *testing.T) {
	long := "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijX"

	cases := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"blank name", usecase.RegisterInput{Name: "   ", Email: "a@b.com", Password: "secret1"}},
		{"name too long", usecase.RegisterInput{Name: long, Email: "a@b.com", Password: "secret1"}},
		{"bad email", usecase.RegisterInput{Name: "Ana", Email: "not-an-email", Password: "secret1"}},
		{"short password", usecase.RegisterInput{Name: "Ana", Email: "a@b.com", Password: "12345"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), &tc.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), err)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID).Return("jwt-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " ANA@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	_, errUnknown := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(newTestUser(), nil)
	fx.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)
	_, errWrong := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong-pass"})

	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrong, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ana@example.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))

	_, err = fx.service.Login(context.Background(), &usecase.LoginInput{Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
}

func TestAuthService_Login_DatabaseError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret1"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "connection reset")
}

func TestAuthService_Authenticate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: user.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.Authenticate(ctx, "good")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

	_, err := fx.service.Authenticate(context.Background(), "bad")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("orphan").Return(&service.Claims{UserID: id}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Authenticate(ctx, "orphan")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
