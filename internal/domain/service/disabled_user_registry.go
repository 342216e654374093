package service

import (
	"context"

	"github.com/google/uuid"
)

// DisabledUserRegistry は無効化されたユーザーのトークンを拒否するための登録簿です
type DisabledUserRegistry interface {
	// MarkDisabled はユーザーを無効化済みとして登録します
	MarkDisabled(ctx context.Context, userID uuid.UUID) error

	// IsDisabled はユーザーが無効化済みかを判定します
	IsDisabled(ctx context.Context, userID uuid.UUID) (bool, error)
}
