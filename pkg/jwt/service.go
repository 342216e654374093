package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService はJWT操作を提供します
type JWTService struct {
	config Config
	now    func() time.Time
}

// Option はJWTServiceのオプションです
type Option func(*JWTService)

// WithNow は現在時刻の取得関数を差し替えます
func WithNow(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService は新しいJWTServiceを作成します
func NewJWTService(cfg Config, opts ...Option) *JWTService {
	s := &JWTService{config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateAccessToken はユーザーIDとロールを持つアクセストークンを生成します
func (s *JWTService) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return s.GenerateAccessTokenWithExpiry(userID, role, s.config.AccessTokenExpiry)
}

// GenerateAccessTokenWithExpiry は有効期限を指定してアクセストークンを生成します
func (s *JWTService) GenerateAccessTokenWithExpiry(userID uuid.UUID, role string, expiry time.Duration) (string, error) {
	now := s.now()

	claims := AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
			Audience:  s.config.Audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		UserID: userID,
		Role:   role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, nil
}

// ValidateAccessToken はアクセストークンを検証します
func (s *JWTService) ValidateAccessToken(tokenString string) (*AccessTokenClaims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.config.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.config.Issuer))
	}
	if len(s.config.Audience) > 0 {
		parserOpts = append(parserOpts, jwt.WithAudience(s.config.Audience[0]))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AccessTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSigningMethod, token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AccessTokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return nil, ErrMissingUserID
	}

	return claims, nil
}

// GetAccessTokenExpiry はアクセストークンの有効期限を返します
func (s *JWTService) GetAccessTokenExpiry() time.Duration {
	return s.config.AccessTokenExpiry
}
