package middleware

import (
	"strings"

	deliverycontext "taskflow/internal/delivery/context"
	"taskflow/internal/domain/entity"
	domainerrors "taskflow/internal/domain/errors"
	"taskflow/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "Bearer"

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the access token and puts the identity into the request context.
// A missing header asks the client to log in; anything else wrong with it is unauthorized.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrLoginRequired)
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || scheme != bearerScheme || token == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		identity, ok := m.tokenSvc.VerifyAccess(token)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetIdentity returns the identity placed by Authenticate.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	return deliverycontext.IdentityFrom(c.Request().Context())
}
