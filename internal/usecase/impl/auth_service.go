// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "taskflow/internal/delivery/context"
	"taskflow/internal/domain/entity"
	domainerrors "taskflow/internal/domain/errors"
	"taskflow/internal/domain/repository"
	"taskflow/internal/domain/service"
	"taskflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
	now              func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account for an email that is not taken yet.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration rejected, email in use", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "register")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, srv.internalError(ctx, "failed to look up email during registration", err)
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, srv.internalError(ctx, "failed to hash password during registration", err)
	}

	newUser := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration of the same email.
			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "register")
		}

		return nil, srv.internalError(ctx, "failed to create user during registration", err)
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, srv.internalError(ctx, "failed to load user during login", err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	identity := user.Identity()

	accessToken, err := srv.tokenService.IssueAccess(identity)
	if err != nil {
		return nil, srv.internalError(ctx, "failed to issue access token", err)
	}

	refreshToken, err := srv.tokenService.IssueRefresh(identity)
	if err != nil {
		return nil, srv.internalError(ctx, "failed to issue refresh token", err)
	}

	record := srv.newRefreshRecord(user.ID, refreshToken)
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, srv.internalError(ctx, "failed to store refresh token during login", err)
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: record.ExpiresAt,
		User:                  user,
	}, nil
}

// RefreshToken rotates the session: the presented token is deleted and a new
// one stored in the same transaction. The delete is what makes a token single-use;
// a concurrent second attempt finds nothing to delete and fails.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	if refreshToken == "" {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenMissing, "refresh")
	}

	identity, ok := srv.tokenService.VerifyRefresh(refreshToken)
	if !ok {
		srv.log(ctx).Warn("Refresh rejected", slog.String("reason", "token verification failed"))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh")
	}

	oldHash := srv.tokenService.HashToken(refreshToken)

	var (
		newRefreshToken string
		newRecord       *entity.RefreshToken
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		record, err := refreshRepo.FindRefreshTokenByHash(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		if record.UserID != identity.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner mismatch")
		}

		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, oldHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token already consumed")
			}

			return errors.Wrap(err, "failed to consume refresh token")
		}

		newRefreshToken, err = srv.tokenService.IssueRefresh(identity)
		if err != nil {
			return errors.Wrap(err, "failed to issue refresh token")
		}

		newRecord = srv.newRefreshRecord(identity.UserID, newRefreshToken)
		if err := refreshRepo.CreateRefreshToken(ctx, newRecord); err != nil {
			return errors.Wrap(err, "failed to store rotated refresh token")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) {
			srv.log(ctx).Warn("Refresh rejected", slog.Any("userID", identity.UserID), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh")
		}

		return nil, srv.internalError(ctx, "failed to execute refresh token transaction", err)
	}

	accessToken, err := srv.tokenService.IssueAccess(identity)
	if err != nil {
		return nil, srv.internalError(ctx, "failed to issue access token", err)
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Any("userID", identity.UserID))

	return &usecase.RefreshOutput{
		AccessToken:           accessToken,
		RefreshToken:          newRefreshToken,
		RefreshTokenExpiresAt: newRecord.ExpiresAt,
	}, nil
}

// Logout deletes the session record behind the refresh token, if any.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return srv.internalError(ctx, "failed to delete refresh token", err)
	}

	srv.log(ctx).Debug("Logged out")

	return nil
}

func (srv *authService) newRefreshRecord(userID uuid.UUID, token string) *entity.RefreshToken {
	now := srv.now()

	return &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(token),
		ExpiresAt: now.Add(srv.tokenService.RefreshTokenTTL()),
		CreatedAt: now,
	}
}

// internalError logs the cause and hides it behind the generic 500.
func (srv *authService) internalError(ctx context.Context, msg string, err error) error {
	srv.log(ctx).Error(msg, slog.Any("error", err))

	return domainerrors.NewInternalError(errors.Wrap(err, msg))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
