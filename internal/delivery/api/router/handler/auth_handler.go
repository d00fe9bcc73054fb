package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskflow/config"
	"taskflow/internal/delivery/api/response"
	"taskflow/internal/domain/constants"
	domainerrors "taskflow/internal/domain/errors"
	"taskflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler holds dependencies for registration and session handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles account creation.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.UserResult{
		Envelope: response.OK("Account created successfully. Please login."),
		User:     response.NewUserResponse(output.User),
	})
}

// Login verifies credentials, sets the refresh cookie and returns the access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken, output.RefreshTokenExpiresAt)

	return response.JSON(c, http.StatusOK, response.LoginResult{
		Envelope:    response.OK("Logged in successfully."),
		AccessToken: output.AccessToken,
		User:        response.NewUserResponse(output.User),
	})
}

// Refresh rotates the refresh cookie and returns a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(constants.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		return errors.WithStack(domainerrors.ErrRefreshTokenMissing)
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken, output.RefreshTokenExpiresAt)

	return response.JSON(c, http.StatusOK, response.TokenResult{
		Envelope:    response.OK("Token refreshed successfully."),
		AccessToken: output.AccessToken,
	})
}

// Logout ends the session behind the refresh cookie, if any, and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(constants.RefreshTokenCookie); err == nil && cookie.Value != "" {
		if err := h.authUC.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	h.clearRefreshCookie(c)

	return response.Message(c, http.StatusOK, "Logged out successfully.")
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string, expiresAt time.Time) {
	cookie := h.baseCookie()
	cookie.Value = token
	cookie.Expires = expiresAt
	cookie.MaxAge = int(time.Until(expiresAt).Seconds())
	c.SetCookie(cookie)
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	cookie := h.baseCookie()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

// baseCookie carries the attributes shared by setting and clearing the cookie.
// Browsers drop SameSite=None cookies that are not Secure, so insecure local
// runs fall back to Lax.
func (h *AuthHandler) baseCookie() *http.Cookie {
	secure := h.cfg.Auth.IsCookieSecure()
	sameSite := http.SameSiteNoneMode
	if !secure {
		sameSite = http.SameSiteLaxMode
	}

	return &http.Cookie{
		Name:     constants.RefreshTokenCookie,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}
