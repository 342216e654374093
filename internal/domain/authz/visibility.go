package authz

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// DefaultHomePageFreshness はホームページ経由のアクセスとみなす期間です
const DefaultHomePageFreshness = 5 * time.Hour

// LeftHomePageData はクライアントがホームページを離れた時刻と遷移先メンターです
type LeftHomePageData struct {
	Time          time.Time
	TargetMentors []uuid.UUID
}

// Targets は指定メンターが遷移先に含まれるかを判定します
func (d *LeftHomePageData) Targets(mentorID uuid.UUID) bool {
	if d == nil {
		return false
	}
	for _, id := range d.TargetMentors {
		if id == mentorID {
			return true
		}
	}
	return false
}

// canViewWithoutLink はダイレクトリンク制限を除いた閲覧可否を判定します
func canViewWithoutLink(actor Actor, mentor *entity.Mentor, memberships Memberships) (visible bool, privileged bool) {
	if actor.Role.IsContentTier() || mentor.IsOwnedBy(actor.UserID) {
		return true, true
	}
	if ResolveDelegatedAccess(mentor.OrgPermissions, memberships).CanView() {
		return true, true
	}
	return !mentor.IsPrivate, false
}

// homePageFresh はホームページ遷移データが有効期間内かを判定します
func homePageFresh(now time.Time, window time.Duration, mentorID uuid.UUID, data *LeftHomePageData) bool {
	if data == nil || data.Time.IsZero() {
		return false
	}
	if now.Sub(data.Time) > window {
		return false
	}
	return data.Targets(mentorID)
}
