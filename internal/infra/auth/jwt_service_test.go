package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/config"
	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/service"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestIdentity() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Email: "ada@example.com"}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	identity := newTestIdentity()

	accessToken, err := svc.IssueAccess(identity)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefresh(identity)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	got, ok := svc.VerifyAccess(accessToken)
	assert.True(t, ok)
	assert.Equal(t, identity, got)

	got, ok = svc.VerifyRefresh(refreshToken)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestJWTService_TokenKindsAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	identity := newTestIdentity()
	accessToken, err := svc.IssueAccess(identity)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefresh(identity)
	require.NoError(t, err)

	_, ok := svc.VerifyRefresh(accessToken)
	assert.False(t, ok)
	_, ok = svc.VerifyAccess(refreshToken)
	assert.False(t, ok)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	identity := newTestIdentity()
	first, err := svc.IssueRefresh(identity)
	require.NoError(t, err)
	second, err := svc.IssueRefresh(identity)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, svc.HashToken(first), svc.HashToken(second))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	for _, raw := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, ok := svc.VerifyAccess(raw)
		assert.False(t, ok, raw)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	issuedAt := time.Now().Add(-2 * time.Minute)
	issuer, err := newJWTService(cfg, func() time.Time { return issuedAt })
	require.NoError(t, err)

	token, err := issuer.IssueAccess(newTestIdentity())
	require.NoError(t, err)

	verifier, err := newJWTService(cfg, time.Now)
	require.NoError(t, err)

	_, ok := verifier.VerifyAccess(token)
	assert.False(t, ok)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_access_secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.IssueAccess(newTestIdentity())
	require.NoError(t, err)

	_, ok := svc.VerifyAccess(token)
	assert.False(t, ok)
}

func TestJWTService_RejectsOtherSigningMethods(t *testing.T) {
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, ok := svc.VerifyAccess(token)
	assert.False(t, ok)
}

func TestJWTService_RequiresExpiry(t *testing.T) {
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, ok := svc.VerifyAccess(token)
	assert.False(t, ok)
}

func TestJWTService_Secrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.EqualError(t, err, "jwt secrets must be provided")

	cfg.SecretKey.Access = "same"
	cfg.SecretKey.Refresh = "same"
	_, err = NewJWTService(cfg)
	assert.EqualError(t, err, "jwt secrets must differ")
}

func TestJWTService_TTLFromConfig(t *testing.T) {
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenTTL())

	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, svc.RefreshTokenTTL())
}

func TestJWTService_HashToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	hash := svc.HashToken("token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, svc.HashToken("token"))
	assert.NotEqual(t, hash, svc.HashToken("token2"))
}
