package authz

import (
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// DenialKind は拒否の種類を表します
type DenialKind int

const (
	DenialNone DenialKind = iota
	DenialAuthenticationRequired
	DenialPermission
	DenialNotFound
	DenialInvalidInput
)

// Decision は権限判定の結果です
type Decision struct {
	Allowed bool
	Kind    DenialKind
	Reason  string
}

// Allow は許可を返します
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny は権限不足による拒否を返します
func Deny(reason string) Decision {
	return Decision{Kind: DenialPermission, Reason: reason}
}

// DenyUnauthenticated は未認証による拒否を返します
func DenyUnauthenticated() Decision {
	return Decision{Kind: DenialAuthenticationRequired, Reason: ReasonAuthenticationRequired}
}

// DenyNotFound は対象不在による拒否を返します
func DenyNotFound(reason string) Decision {
	return Decision{Kind: DenialNotFound, Reason: reason}
}

// DenyInvalidInput は不正な入力による拒否を返します
func DenyInvalidInput(reason string) Decision {
	return Decision{Kind: DenialInvalidInput, Reason: reason}
}

// Outcome はメトリクス用のラベル値を返します
func (d Decision) Outcome() string {
	switch d.Kind {
	case DenialNone:
		if d.Allowed {
			return "allowed"
		}
		return "denied"
	case DenialAuthenticationRequired:
		return "unauthenticated"
	case DenialNotFound:
		return "not_found"
	case DenialInvalidInput:
		return "invalid_input"
	default:
		return "denied"
	}
}

// Err は拒否をAppErrorに変換します（許可の場合はnil）
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Kind {
	case DenialAuthenticationRequired:
		return apperror.NewUnauthorizedError(d.Reason)
	case DenialNotFound:
		return apperror.NewNotFoundError(d.Reason)
	case DenialInvalidInput:
		return apperror.NewValidationError(d.Reason, nil)
	default:
		return apperror.NewForbiddenError(d.Reason)
	}
}
