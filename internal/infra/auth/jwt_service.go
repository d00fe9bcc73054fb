package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskflow/config"
	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/service"
	"taskflow/internal/errors"
)

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService builds the token service from secretKey and auth configuration.
// Startup fails when a secret is missing or both kinds share one secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("jwt secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		now:           now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

// IssueAccess signs an access token for the identity.
func (s *jwtService) IssueAccess(identity entity.Identity) (string, error) {
	return s.sign(identity, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

// IssueRefresh signs a refresh token for the identity.
func (s *jwtService) IssueRefresh(identity entity.Identity) (string, error) {
	return s.sign(identity, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

// VerifyAccess validates an access token and returns its identity.
func (s *jwtService) VerifyAccess(token string) (entity.Identity, bool) {
	return s.verify(token, service.TokenTypeAccess, s.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its identity.
func (s *jwtService) VerifyRefresh(token string) (entity.Identity, bool) {
	return s.verify(token, service.TokenTypeRefresh, s.refreshSecret)
}

// HashToken returns the hex SHA-256 digest used as the storage key of a refresh token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(identity entity.Identity, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps two tokens issued within the same second distinct.
			ID:        uuid.NewString(),
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrapf(err, "sign %s token", tokenType)
	}

	return signed, nil
}

func (s *jwtService) verify(raw, tokenType string, secret []byte) (entity.Identity, bool) {
	if raw == "" {
		return entity.Identity{}, false
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return entity.Identity{}, false
	}

	if claims.Type != tokenType || claims.UserID == uuid.Nil {
		return entity.Identity{}, false
	}

	return entity.Identity{UserID: claims.UserID, Email: claims.Email}, true
}
