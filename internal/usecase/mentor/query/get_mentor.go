package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// GetMentorInput はメンター取得の入力を定義します
type GetMentorInput struct {
	Actor    authz.Actor
	MentorID uuid.UUID
	// HomePageはダイレクトリンク制限のあるメンターの閲覧に必要です
	HomePage *authz.LeftHomePageData
}

// GetMentorOutput はメンター取得の出力を定義します
type GetMentorOutput struct {
	Mentor *entity.Mentor
}

// GetMentorQuery はメンター取得クエリです
type GetMentorQuery struct {
	resolver authz.PermissionResolver
}

// NewGetMentorQuery は新しいGetMentorQueryを作成します
func NewGetMentorQuery(resolver authz.PermissionResolver) *GetMentorQuery {
	return &GetMentorQuery{resolver: resolver}
}

// Execute は閲覧権限を確認してメンターを返します
func (q *GetMentorQuery) Execute(ctx context.Context, input GetMentorInput) (*GetMentorOutput, error) {
	mentor, err := q.resolver.AuthorizeMentorView(ctx, input.Actor, input.MentorID, input.HomePage)
	if err != nil {
		return nil, err
	}
	return &GetMentorOutput{Mentor: mentor}, nil
}
