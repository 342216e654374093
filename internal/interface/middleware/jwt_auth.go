package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/jwt"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

// DisabledUserChecker は無効化済みユーザーの判定を提供します
type DisabledUserChecker interface {
	IsDisabled(ctx context.Context, userID uuid.UUID) (bool, error)
}

// JWTAuthMiddleware はベアラートークンから行為者を解決するミドルウェアを提供します
type JWTAuthMiddleware struct {
	jwtService    *jwt.JWTService
	disabledUsers DisabledUserChecker
}

// NewJWTAuthMiddleware は新しいJWTAuthMiddlewareを作成します
func NewJWTAuthMiddleware(jwtService *jwt.JWTService, disabledUsers DisabledUserChecker) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		jwtService:    jwtService,
		disabledUsers: disabledUsers,
	}
}

// OptionalAuth は行為者を解決するミドルウェアを返します
// ヘッダーがなければ匿名として続行し、不正なトークンは401にします
func (m *JWTAuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				SetActor(c, authz.Anonymous())
				return next(c)
			}

			actor, err := m.resolve(c.Request().Context(), authHeader)
			if err != nil {
				return err
			}

			SetActor(c, actor)

			// リクエストコンテキストにも設定（ログ出力で使用）
			ctx := c.Request().Context()
			ctx = logger.ContextWithUserID(ctx, actor.UserID.String())
			ctx = logger.ContextWithRole(ctx, actor.Role.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireAuth は匿名の行為者を拒否するミドルウェアを返します
// OptionalAuthの後に配置します
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GetActor(c).IsAnonymous() {
				return authz.DenyUnauthenticated().Err()
			}
			return next(c)
		}
	}
}

// resolve はAuthorizationヘッダーを検証して行為者を返します
func (m *JWTAuthMiddleware) resolve(ctx context.Context, authHeader string) (authz.Actor, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return authz.Actor{}, apperror.NewUnauthorizedError("invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateAccessToken(parts[1])
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return authz.Actor{}, apperror.NewTokenExpiredError()
		}
		return authz.Actor{}, apperror.NewUnauthorizedError("invalid token")
	}

	role := valueobject.UserRole(claims.Role)
	if !role.IsValid() {
		return authz.Actor{}, apperror.NewUnauthorizedError("invalid token")
	}

	if m.disabledUsers != nil {
		disabled, err := m.disabledUsers.IsDisabled(ctx, claims.UserID)
		if err != nil {
			// 判定できない場合は続行し、以降の処理に委ねる
			logger.Warn(ctx, "failed to check disabled user", "error", err, "user_id", claims.UserID.String())
		} else if disabled {
			return authz.Actor{}, apperror.NewUnauthorizedError("user is disabled")
		}
	}

	return authz.NewActor(claims.UserID, role), nil
}
