package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(now time.Time) *JWTService {
	cfg := DefaultConfig()
	cfg.SecretKey = testSecret
	return NewJWTService(cfg, WithNow(func() time.Time { return now }))
}

func TestJWTService_RoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "ADMIN")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "mentorpal", claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := newTestService(issued).GenerateAccessToken(uuid.New(), "USER")
	require.NoError(t, err)

	_, err = newTestService(issued.Add(48 * time.Hour)).ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	now := time.Now()
	token, err := newTestService(now).GenerateAccessToken(uuid.New(), "USER")
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.SecretKey = "ffffffffffffffffffffffffffffffff"
	other := NewJWTService(cfg, WithNow(func() time.Time { return now }))

	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()
	cfg.SecretKey = testSecret
	cfg.Issuer = "someone-else"
	token, err := NewJWTService(cfg, WithNow(func() time.Time { return now })).GenerateAccessToken(uuid.New(), "USER")
	require.NoError(t, err)

	_, err = newTestService(now).ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MissingUserID(t *testing.T) {
	now := time.Now()
	claims := AccessTokenClaims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "mentorpal",
			Audience:  DefaultConfig().Audience,
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
		Role: "USER",
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestService(now).ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrSecretKeyRequired)
	assert.ErrorIs(t, Config{SecretKey: "short"}.Validate(), ErrSecretKeyTooShort)
	assert.NoError(t, Config{SecretKey: testSecret}.Validate())
}
