package impl

import (
	"context"
	"testing"
	"time"

	"taskflow/internal/domain/entity"
	domainerrors "taskflow/internal/domain/errors"
	"taskflow/internal/domain/repository"
	mockRepo "taskflow/internal/mocks/repository"
	mockSvc "taskflow/internal/mocks/service"
	"taskflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          *authService
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	}).(*authService)
	svc.now = func() time.Time { return fixedNow }

	return authServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "  Ada Lovelace ",
		Email:    " Ada@Example.com",
		Password: "secret123",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, "Ada Lovelace", output.User.Name)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_EmailAlreadyExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(newTestUser(), nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Register_DuplicateOnCreate(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ada@example.com", Password: "secret123"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "Internal server error.", appErr.Message())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssueAccess(user.Identity()).Return("access", nil)
	fx.tokenService.EXPECT().IssueRefresh(user.Identity()).Return("refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, fixedNow.Add(7*24*time.Hour), output.RefreshTokenExpiresAt)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret123"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		user := newTestUser()

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_RefreshToken_Missing(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.RefreshToken(context.Background(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenMissing))
}

func TestAuthService_RefreshToken_VerificationFails(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().VerifyRefresh("garbage").Return(entity.Identity{}, false)

	_, err := fx.service.RefreshToken(context.Background(), "garbage")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	identity := user.Identity()

	fx.tokenService.EXPECT().VerifyRefresh("old").Return(identity, true)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")
	fx.tokenService.EXPECT().HashToken("new").Return("new-hash")
	fx.tokenService.EXPECT().RefreshTokenTTL().Return(time.Hour)
	fx.tokenService.EXPECT().IssueRefresh(identity).Return("new", nil)
	fx.tokenService.EXPECT().IssueAccess(identity).Return("access", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "old-hash").
				Return(&entity.RefreshToken{UserID: user.ID, TokenHash: "old-hash"}, nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
					return token.TokenHash == "new-hash" && token.UserID == user.ID
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, "old")

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "new", output.RefreshToken)
	assert.Equal(t, fixedNow.Add(time.Hour), output.RefreshTokenExpiresAt)
}

func TestAuthService_RefreshToken_AlreadyConsumed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identity := newTestUser().Identity()

	fx.tokenService.EXPECT().VerifyRefresh("old").Return(identity, true)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "old-hash").
				Return(nil, repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, "old")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshToken_LostDeleteRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.tokenService.EXPECT().VerifyRefresh("old").Return(user.Identity(), true)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "old-hash").
				Return(&entity.RefreshToken{UserID: user.ID}, nil)
			mockRefreshRepo.EXPECT().
				DeleteRefreshTokenByHash(ctx, "old-hash").
				Return(repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.RefreshToken(ctx, "old")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshToken_OwnerMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identity := newTestUser().Identity()

	fx.tokenService.EXPECT().VerifyRefresh("old").Return(identity, true)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "old-hash").
				Return(&entity.RefreshToken{UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.RefreshToken(ctx, "old")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("empty token is a no-op", func(t *testing.T) {
		fx := createTestAuthService(t)

		assert.NoError(t, fx.service.Logout(context.Background(), ""))
	})

	t.Run("unknown token is ignored", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale-hash").Return(repository.ErrRefreshTokenNotFound)

		assert.NoError(t, fx.service.Logout(ctx, "stale"))
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().HashToken("live").Return("live-hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "live-hash").Return(errors.New("db down"))

		err := fx.service.Logout(ctx, "live")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}
