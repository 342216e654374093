package valueobject

import "errors"

var (
	ErrInvalidPermissionLevel = errors.New("invalid permission level")
)

// PermissionLevel は組織に委譲されたメンターへの権限レベルを表す値オブジェクト
// 順序: HIDDEN < NONE < SHARE < MANAGE < ADMIN
// HIDDENは「付与なし」ではなく、既定の表示も抑止する明示的な上書き
type PermissionLevel string

const (
	PermissionLevelHidden PermissionLevel = "HIDDEN"
	PermissionLevelNone   PermissionLevel = "NONE"
	PermissionLevelShare  PermissionLevel = "SHARE"
	PermissionLevelManage PermissionLevel = "MANAGE"
	PermissionLevelAdmin  PermissionLevel = "ADMIN"
)

// NewPermissionLevel は文字列からPermissionLevelを生成します
func NewPermissionLevel(level string) (PermissionLevel, error) {
	l := PermissionLevel(level)
	if !l.IsValid() {
		return "", ErrInvalidPermissionLevel
	}
	return l, nil
}

// IsValid はレベルが有効かを判定します
func (l PermissionLevel) IsValid() bool {
	switch l {
	case PermissionLevelHidden, PermissionLevelNone, PermissionLevelShare,
		PermissionLevelManage, PermissionLevelAdmin:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (l PermissionLevel) String() string {
	return string(l)
}

// Rank はレベルの順位を返します（比較用）
// 不正な値はHIDDENより下位として扱う
func (l PermissionLevel) Rank() int {
	switch l {
	case PermissionLevelAdmin:
		return 4
	case PermissionLevelManage:
		return 3
	case PermissionLevelShare:
		return 2
	case PermissionLevelNone:
		return 1
	case PermissionLevelHidden:
		return 0
	default:
		return -1
	}
}

// AllowsView は閲覧を許可するレベルかを判定します
func (l PermissionLevel) AllowsView() bool {
	return l.Rank() >= PermissionLevelShare.Rank()
}

// AllowsEdit は編集を許可するレベルかを判定します
func (l PermissionLevel) AllowsEdit() bool {
	return l.Rank() >= PermissionLevelManage.Rank()
}

// IsHidden は既定の一覧から除外するレベルかを判定します
func (l PermissionLevel) IsHidden() bool {
	return l == PermissionLevelHidden
}

// MaxPermissionLevel は最も強いレベルを返します
// 空の場合はNONEを返します
func MaxPermissionLevel(levels ...PermissionLevel) PermissionLevel {
	if len(levels) == 0 {
		return PermissionLevelNone
	}
	max := levels[0]
	for _, l := range levels[1:] {
		if l.Rank() > max.Rank() {
			max = l
		}
	}
	return max
}
