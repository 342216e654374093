package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
)

const (
	ContextKeyActor = "actor"
)

// GetActor はコンテキストから行為者を取得します
// 認証ミドルウェアを通っていない場合は匿名を返します
func GetActor(c echo.Context) authz.Actor {
	if actor, ok := c.Get(ContextKeyActor).(authz.Actor); ok {
		return actor
	}
	return authz.Anonymous()
}

// SetActor はコンテキストに行為者を設定します
func SetActor(c echo.Context, actor authz.Actor) {
	c.Set(ContextKeyActor, actor)
}

// GetUserID はコンテキストからユーザーIDを取得します
func GetUserID(c echo.Context) string {
	actor := GetActor(c)
	if actor.IsAnonymous() {
		return ""
	}
	return actor.UserID.String()
}
