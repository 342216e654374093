package authz

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

// Resource は判定対象のスナップショットです
// 操作ごとに必要なフィールドのみ設定します
type Resource struct {
	Mentor        *entity.Mentor
	Organization  *entity.Organization
	TargetUserID  uuid.UUID
	TargetUser    *entity.User
	RequestedRole valueobject.UserRole
	Legacy        bool
	Memberships   Memberships
	HomePage      *LeftHomePageData
}

// Evaluator は全ての権限判定の入口です
// 状態を持たず、同じ入力と時刻に対して常に同じ結果を返します
type Evaluator struct {
	clock             Clock
	homePageFreshness time.Duration
}

// Option はEvaluatorのオプションです
type Option func(*Evaluator)

// WithHomePageFreshness はホームページ遷移データの有効期間を設定します
func WithHomePageFreshness(d time.Duration) Option {
	return func(e *Evaluator) {
		if d > 0 {
			e.homePageFreshness = d
		}
	}
}

// NewEvaluator は新しいEvaluatorを作成します
func NewEvaluator(clock Clock, opts ...Option) *Evaluator {
	if clock == nil {
		clock = SystemClock{}
	}
	e := &Evaluator{
		clock:             clock,
		homePageFreshness: DefaultHomePageFreshness,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate は操作に応じた判定を行います
func (e *Evaluator) Evaluate(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionViewMentor:
		return e.EvaluateMentorView(actor, res.Mentor, res.Memberships, res.HomePage)
	case ActionEditMentorDetails, ActionEditMentorPrivacy, ActionEditMentorSubjects,
		ActionEditAnswer, ActionEditMentorURL:
		return EvaluateMentorEdit(actor, action, res.Mentor, res.Memberships)
	case ActionApproveMentorPublicly:
		return EvaluateApproveMentor(actor, res.Mentor)
	case ActionDisableUser:
		return EvaluateDisableUser(actor, res.TargetUserID, res.TargetUser)
	case ActionCreateOrganization:
		return EvaluateCreateOrganization(actor)
	case ActionViewOrganization:
		return EvaluateOrganizationView(actor, res.Organization, res.Memberships)
	case ActionEditOrganization, ActionEditOrganizationConfig:
		return EvaluateOrganizationEdit(actor, res.Organization)
	case ActionEditUserPermissions:
		if res.Legacy {
			return EvaluateLegacyUserPermissionEdit(actor, res.TargetUserID, res.TargetUser, res.RequestedRole)
		}
		return EvaluateUserPermissionEdit(actor, res.TargetUserID, res.TargetUser, res.RequestedRole)
	case ActionCreateOrEditMentorPanel, ActionDeleteMentorPanel:
		return EvaluateMentorPanel(actor, action)
	case ActionEditOtherUsersUserQuestion:
		return EvaluateUserQuestionEdit(actor, res.Mentor)
	default:
		return DenyInvalidInput("unknown action " + action.String())
	}
}

// EvaluateMentorView はメンターの閲覧を判定します
//
// 判定順:
//  1. コンテンツ系ロール、オーナー、組織経由のSHARE以上は閲覧可
//  2. 公開メンターは誰でも閲覧可（ダイレクトリンク制限時はホームページ経由のみ）
//  3. それ以外は非公開として拒否
func (e *Evaluator) EvaluateMentorView(actor Actor, mentor *entity.Mentor, memberships Memberships, homePage *LeftHomePageData) Decision {
	if mentor == nil {
		return DenyNotFound(ReasonInvalidMentor)
	}
	visible, privileged := canViewWithoutLink(actor, mentor, memberships)
	if privileged {
		return Allow()
	}
	if !visible {
		return Deny(ReasonMentorPrivate)
	}
	if mentor.DirectLinkPrivate && !homePageFresh(e.clock.Now(), e.homePageFreshness, mentor.ID, homePage) {
		return Deny(ReasonMentorHomePageOnly)
	}
	return Allow()
}

// IncludeInOrgListing は組織のメンター一覧に含めるかを判定します
// その組織に対してHIDDENが設定されたメンターとアーカイブ済みメンターは除外されます
func (e *Evaluator) IncludeInOrgListing(actor Actor, mentor *entity.Mentor, orgID uuid.UUID, memberships Memberships) bool {
	if mentor == nil || mentor.IsArchived {
		return false
	}
	if perm, ok := mentor.OrgPermissionFor(orgID); ok && perm.ViewPermission.IsHidden() {
		return false
	}
	visible, _ := canViewWithoutLink(actor, mentor, memberships)
	return visible
}
