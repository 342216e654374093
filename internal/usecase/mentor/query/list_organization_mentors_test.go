package query_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/query"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

func TestListOrganizationMentorsQuery_Execute_FiltersHiddenPrivateAndArchived(t *testing.T) {
	ctx := context.Background()
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	orgID := uuid.New()
	actor := authz.Anonymous()

	public := entity.NewMentor(uuid.New(), "public")
	hidden := entity.NewMentor(uuid.New(), "hidden")
	hidden.OrgPermissions = []entity.OrgPermission{{OrgID: orgID, ViewPermission: valueobject.PermissionLevelHidden, EditPermission: valueobject.PermissionLevelNone}}
	private := entity.NewMentor(uuid.New(), "private")
	private.IsPrivate = true
	archived := entity.NewMentor(uuid.New(), "archived")
	archived.Archive()

	resolver.On("AuthorizeOrganization", ctx, actor, authz.ActionViewOrganization, orgID).Return(&entity.Organization{ID: orgID}, nil)
	resolver.On("Memberships", ctx, actor).Return(authz.Memberships{}, nil)
	// リポジトリ側の絞り込みをすり抜けた行も評価器で除外される
	mentorRepo.On("List", ctx, repository.MentorFilter{
		ExcludeHiddenIn: &orgID,
		PublicOrOwnedBy: &uuid.Nil,
		Limit:           50,
	}).Return([]*entity.Mentor{public, hidden, private, archived}, nil)

	q := query.NewListOrganizationMentorsQuery(mentorRepo, resolver, authz.NewEvaluator(authz.SystemClock{}))
	output, err := q.Execute(ctx, query.ListOrganizationMentorsInput{Actor: actor, OrgID: orgID})

	require.NoError(t, err)
	require.Len(t, output.Mentors, 1)
	assert.Equal(t, public.ID, output.Mentors[0].ID)
	assert.Nil(t, output.NextOffset)
}

func TestListOrganizationMentorsQuery_Execute_PrivateOrg_Denied(t *testing.T) {
	ctx := context.Background()
	resolver := mocks.NewMockPermissionResolver(t)
	orgID := uuid.New()
	actor := authz.Anonymous()

	resolver.On("AuthorizeOrganization", ctx, actor, authz.ActionViewOrganization, orgID).
		Return(nil, authz.Deny(authz.ReasonOrganizationPrivate).Err())

	q := query.NewListOrganizationMentorsQuery(mocks.NewMockMentorRepository(t), resolver, authz.NewEvaluator(nil))
	_, err := q.Execute(ctx, query.ListOrganizationMentorsInput{Actor: actor, OrgID: orgID, Limit: 1000})

	assert.True(t, apperror.IsForbidden(err))
}

func TestListOrganizationMentorsQuery_Execute_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	orgID := uuid.New()
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)

	resolver.On("AuthorizeOrganization", ctx, actor, authz.ActionViewOrganization, orgID).Return(&entity.Organization{ID: orgID}, nil)
	resolver.On("Memberships", ctx, actor).Return(authz.Memberships{}, nil)
	mentorRepo.On("List", ctx, repository.MentorFilter{
		ExcludeHiddenIn: &orgID,
		PublicOrOwnedBy: &actor.UserID,
		Limit:           200,
		Offset:          10,
	}).Return([]*entity.Mentor{}, nil)

	q := query.NewListOrganizationMentorsQuery(mentorRepo, resolver, authz.NewEvaluator(nil))
	output, err := q.Execute(ctx, query.ListOrganizationMentorsInput{Actor: actor, OrgID: orgID, Limit: 1000, Offset: 10})

	require.NoError(t, err)
	assert.Empty(t, output.Mentors)
	assert.Nil(t, output.NextOffset)
}

func newPrivateMentor(name string) *entity.Mentor {
	m := entity.NewMentor(uuid.New(), name)
	m.IsPrivate = true
	return m
}

func TestListOrganizationMentorsQuery_Execute_FilteredBatch_ReadsFurther(t *testing.T) {
	ctx := context.Background()
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	orgID := uuid.New()
	actor := authz.Anonymous()

	public := entity.NewMentor(uuid.New(), "public")

	resolver.On("AuthorizeOrganization", ctx, actor, authz.ActionViewOrganization, orgID).Return(&entity.Organization{ID: orgID}, nil)
	resolver.On("Memberships", ctx, actor).Return(authz.Memberships{}, nil)
	filter := repository.MentorFilter{ExcludeHiddenIn: &orgID, PublicOrOwnedBy: &uuid.Nil, Limit: 2}
	mentorRepo.On("List", ctx, filter).
		Return([]*entity.Mentor{newPrivateMentor("a"), newPrivateMentor("b")}, nil).Once()
	filter.Offset = 2
	mentorRepo.On("List", ctx, filter).Return([]*entity.Mentor{public}, nil).Once()

	q := query.NewListOrganizationMentorsQuery(mentorRepo, resolver, authz.NewEvaluator(authz.SystemClock{}))
	output, err := q.Execute(ctx, query.ListOrganizationMentorsInput{Actor: actor, OrgID: orgID, Limit: 2})

	require.NoError(t, err)
	require.Len(t, output.Mentors, 1)
	assert.Equal(t, public.ID, output.Mentors[0].ID)
	assert.Nil(t, output.NextOffset)
}

func TestListOrganizationMentorsQuery_Execute_FullPage_ReturnsNextOffset(t *testing.T) {
	ctx := context.Background()
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	orgID := uuid.New()
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleContentManager)

	first := entity.NewMentor(uuid.New(), "first")
	second := entity.NewMentor(uuid.New(), "second")
	third := entity.NewMentor(uuid.New(), "third")
	hidden := entity.NewMentor(uuid.New(), "hidden")
	hidden.OrgPermissions = []entity.OrgPermission{{OrgID: orgID, ViewPermission: valueobject.PermissionLevelHidden, EditPermission: valueobject.PermissionLevelNone}}

	resolver.On("AuthorizeOrganization", ctx, actor, authz.ActionViewOrganization, orgID).Return(&entity.Organization{ID: orgID}, nil)
	resolver.On("Memberships", ctx, actor).Return(authz.Memberships{}, nil)
	mentorRepo.On("List", ctx, repository.MentorFilter{ExcludeHiddenIn: &orgID, Limit: 2, Offset: 4}).
		Return([]*entity.Mentor{hidden, first}, nil).Once()
	mentorRepo.On("List", ctx, repository.MentorFilter{ExcludeHiddenIn: &orgID, Limit: 2, Offset: 6}).
		Return([]*entity.Mentor{second, third}, nil).Once()

	q := query.NewListOrganizationMentorsQuery(mentorRepo, resolver, authz.NewEvaluator(authz.SystemClock{}))
	output, err := q.Execute(ctx, query.ListOrganizationMentorsInput{Actor: actor, OrgID: orgID, Limit: 2, Offset: 4})

	require.NoError(t, err)
	require.Len(t, output.Mentors, 2)
	assert.Equal(t, first.ID, output.Mentors[0].ID)
	assert.Equal(t, second.ID, output.Mentors[1].ID)
	require.NotNil(t, output.NextOffset)
	assert.Equal(t, 7, *output.NextOffset)
}
