package service

import (
	"time"

	"taskflow/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the typ claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Type   string    `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited tokens.
// Verification never returns an error: a token is either valid or it is not.
type TokenService interface {
	// IssueAccess signs a short-lived access token for the identity.
	IssueAccess(identity entity.Identity) (string, error)

	// IssueRefresh signs a long-lived refresh token for the identity.
	IssueRefresh(identity entity.Identity) (string, error)

	// VerifyAccess checks signature, expiry and type of an access token.
	VerifyAccess(token string) (entity.Identity, bool)

	// VerifyRefresh checks signature, expiry and type of a refresh token.
	VerifyRefresh(token string) (entity.Identity, bool)

	// HashToken returns the storage key of a refresh token.
	HashToken(token string) string

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
