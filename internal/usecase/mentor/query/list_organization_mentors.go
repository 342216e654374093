package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	// maxListScans は1リクエストで読み進めるバッチ数の上限です
	maxListScans = 10
)

// ListOrganizationMentorsInput は組織のメンター一覧取得の入力を定義します
type ListOrganizationMentorsInput struct {
	Actor  authz.Actor
	OrgID  uuid.UUID
	Limit  int
	Offset int
}

// ListOrganizationMentorsOutput は組織のメンター一覧取得の出力を定義します
type ListOrganizationMentorsOutput struct {
	Mentors []*entity.Mentor
	// NextOffset は続きを取得する際のオフセットです。末尾まで読んだ場合はnil
	NextOffset *int
}

// ListOrganizationMentorsQuery は組織のホームページに表示するメンター一覧クエリです
type ListOrganizationMentorsQuery struct {
	mentorRepo repository.MentorRepository
	resolver   authz.PermissionResolver
	evaluator  *authz.Evaluator
}

// NewListOrganizationMentorsQuery は新しいListOrganizationMentorsQueryを作成します
func NewListOrganizationMentorsQuery(
	mentorRepo repository.MentorRepository,
	resolver authz.PermissionResolver,
	evaluator *authz.Evaluator,
) *ListOrganizationMentorsQuery {
	return &ListOrganizationMentorsQuery{
		mentorRepo: mentorRepo,
		resolver:   resolver,
		evaluator:  evaluator,
	}
}

// Execute は組織の閲覧権限を確認し、表示対象のメンターを返します
// 組織に対してHIDDENのメンターと閲覧できないメンターは除外されます
func (q *ListOrganizationMentorsQuery) Execute(ctx context.Context, input ListOrganizationMentorsInput) (*ListOrganizationMentorsOutput, error) {
	// 1. 組織の閲覧権限チェック
	if _, err := q.resolver.AuthorizeOrganization(ctx, input.Actor, authz.ActionViewOrganization, input.OrgID); err != nil {
		return nil, err
	}

	// 2. 行為者の組織ロール取得
	memberships, err := q.resolver.Memberships(ctx, input.Actor)
	if err != nil {
		return nil, err
	}

	// 3. 一覧取得とフィルタ
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	filter := repository.MentorFilter{ExcludeHiddenIn: &input.OrgID, Limit: limit}
	if !input.Actor.Role.IsContentTier() && len(memberships) == 0 {
		// 委譲権限を持たない行為者は公開メンターと自分のメンターのみ
		ownerID := input.Actor.UserID
		filter.PublicOrOwnedBy = &ownerID
	}

	// 最終判定は評価器で行い、ページが埋まるまで読み進める
	visible := make([]*entity.Mentor, 0, limit)
	for scan := 0; scan < maxListScans; scan++ {
		filter.Offset = offset
		batch, err := q.mentorRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}

		for _, m := range batch {
			offset++
			if !q.evaluator.IncludeInOrgListing(input.Actor, m, input.OrgID, memberships) {
				continue
			}
			visible = append(visible, m)
			if len(visible) == limit {
				return &ListOrganizationMentorsOutput{Mentors: visible, NextOffset: &offset}, nil
			}
		}

		if len(batch) < limit {
			return &ListOrganizationMentorsOutput{Mentors: visible}, nil
		}
	}

	return &ListOrganizationMentorsOutput{Mentors: visible, NextOffset: &offset}, nil
}
