package authz

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

// DecisionRecorder は判定結果の記録先です
type DecisionRecorder interface {
	RecordDecision(action, outcome string)
}

// PermissionResolverImpl は権限解決サービスの実装です
// リソースのスナップショット取得:
// 1. 対象メンター・組織をリポジトリから取得（不在はnilとして判定に渡す）
// 2. 組織経由の委譲が関係する場合のみ行為者の所属組織を取得
// 3. Evaluatorで判定し、拒否はDecision.Err()で返す
type PermissionResolverImpl struct {
	evaluator  *authz.Evaluator
	mentorRepo repository.MentorRepository
	orgRepo    repository.OrganizationRepository
	recorder   DecisionRecorder

	// 同一ユーザーの所属組織取得を同時リクエスト間でまとめます
	membershipGroup singleflight.Group
}

var _ authz.PermissionResolver = (*PermissionResolverImpl)(nil)

// NewPermissionResolver は新しいPermissionResolverを作成します
func NewPermissionResolver(
	evaluator *authz.Evaluator,
	mentorRepo repository.MentorRepository,
	orgRepo repository.OrganizationRepository,
	recorder DecisionRecorder,
) *PermissionResolverImpl {
	return &PermissionResolverImpl{
		evaluator:  evaluator,
		mentorRepo: mentorRepo,
		orgRepo:    orgRepo,
		recorder:   recorder,
	}
}

// Memberships は行為者の組織ロールを取得します
func (r *PermissionResolverImpl) Memberships(ctx context.Context, actor authz.Actor) (authz.Memberships, error) {
	if actor.IsAnonymous() {
		return authz.Memberships{}, nil
	}

	// 取得処理は最初の呼び出し元のキャンセルに影響されないよう切り離し、
	// 各呼び出し元は自身のコンテキストで待機を打ち切る
	lookupCtx := context.WithoutCancel(ctx)
	ch := r.membershipGroup.DoChan(actor.UserID.String(), func() (interface{}, error) {
		rows, err := r.orgRepo.FindMembershipsByUserID(lookupCtx, actor.UserID)
		if err != nil {
			return nil, err
		}
		memberships := make(authz.Memberships, len(rows))
		for _, row := range rows {
			memberships[row.OrgID] = row.Role
		}
		return memberships, nil
	})

	var v interface{}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		v = res.Val
	}
	return v.(authz.Memberships), nil
}

// AuthorizeMentor はメンターへの編集系操作を判定し、対象メンターを返します
func (r *PermissionResolverImpl) AuthorizeMentor(ctx context.Context, actor authz.Actor, action authz.Action, mentorID uuid.UUID) (*entity.Mentor, error) {
	if actor.IsAnonymous() {
		return nil, r.decide(ctx, actor, action, authz.DenyUnauthenticated())
	}

	var (
		mentor *entity.Mentor
		err    error
	)
	if mentorID == uuid.Nil {
		mentor, err = r.mentorRepo.FindByUserID(ctx, actor.UserID)
		if apperror.IsNotFound(err) {
			return nil, r.decide(ctx, actor, action, authz.DenyNotFound(authz.ReasonNoMentor))
		}
	} else {
		mentor, err = r.findMentor(ctx, mentorID)
	}
	if err != nil {
		return nil, err
	}

	res := authz.Resource{Mentor: mentor}
	if err := r.Authorize(ctx, actor, action, res); err != nil {
		return nil, err
	}
	return mentor, nil
}

// AuthorizeMentorView はメンターの閲覧を判定し、対象メンターを返します
func (r *PermissionResolverImpl) AuthorizeMentorView(ctx context.Context, actor authz.Actor, mentorID uuid.UUID, homePage *authz.LeftHomePageData) (*entity.Mentor, error) {
	mentor, err := r.findMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	res := authz.Resource{Mentor: mentor, HomePage: homePage}
	if err := r.Authorize(ctx, actor, authz.ActionViewMentor, res); err != nil {
		return nil, err
	}
	return mentor, nil
}

// AuthorizeOrganization は組織への操作を判定し、対象組織を返します
func (r *PermissionResolverImpl) AuthorizeOrganization(ctx context.Context, actor authz.Actor, action authz.Action, orgID uuid.UUID) (*entity.Organization, error) {
	org, err := r.orgRepo.FindByID(ctx, orgID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	if apperror.IsNotFound(err) {
		org = nil
	}

	if err := r.Authorize(ctx, actor, action, authz.Resource{Organization: org}); err != nil {
		return nil, err
	}
	return org, nil
}

// Authorize は取得済みのリソースに対する操作を判定します
// 組織経由の委譲が判定に関係し、所属組織が未設定の場合は取得して補います
func (r *PermissionResolverImpl) Authorize(ctx context.Context, actor authz.Actor, action authz.Action, res authz.Resource) error {
	if res.Memberships == nil && needsMemberships(actor, action, res) {
		memberships, err := r.Memberships(ctx, actor)
		if err != nil {
			return err
		}
		res.Memberships = memberships
	}

	return r.decide(ctx, actor, action, r.evaluator.Evaluate(actor, action, res))
}

// decide は判定結果を記録し、拒否の場合はエラーを返します
func (r *PermissionResolverImpl) decide(ctx context.Context, actor authz.Actor, action authz.Action, decision authz.Decision) error {
	if r.recorder != nil {
		r.recorder.RecordDecision(action.String(), decision.Outcome())
	}
	if !decision.Allowed {
		logger.Debug(ctx, "authorization denied",
			"action", action.String(),
			"actor_id", actor.UserID.String(),
			"outcome", decision.Outcome(),
			"reason", decision.Reason,
		)
	}
	return decision.Err()
}

func (r *PermissionResolverImpl) findMentor(ctx context.Context, mentorID uuid.UUID) (*entity.Mentor, error) {
	mentor, err := r.mentorRepo.FindByID(ctx, mentorID)
	if apperror.IsNotFound(err) {
		return nil, nil
	}
	return mentor, err
}

// needsMemberships は判定に所属組織が必要かを返します
func needsMemberships(actor authz.Actor, action authz.Action, res authz.Resource) bool {
	if actor.IsAnonymous() {
		return false
	}
	switch {
	case res.Mentor != nil:
		return len(res.Mentor.OrgPermissions) > 0
	case action == authz.ActionViewOrganization && res.Organization != nil:
		return len(res.Organization.Permissions) > 0
	}
	return false
}
