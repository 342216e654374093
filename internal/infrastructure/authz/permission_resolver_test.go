package authz_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	infraauthz "github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type recordedDecision struct {
	action  string
	outcome string
}

type fakeRecorder struct {
	decisions []recordedDecision
}

func (f *fakeRecorder) RecordDecision(action, outcome string) {
	f.decisions = append(f.decisions, recordedDecision{action: action, outcome: outcome})
}

type resolverTestDeps struct {
	mentorRepo *mocks.MockMentorRepository
	orgRepo    *mocks.MockOrganizationRepository
	recorder   *fakeRecorder
}

func newResolverTestDeps(t *testing.T) *resolverTestDeps {
	t.Helper()
	return &resolverTestDeps{
		mentorRepo: mocks.NewMockMentorRepository(t),
		orgRepo:    mocks.NewMockOrganizationRepository(t),
		recorder:   &fakeRecorder{},
	}
}

func (d *resolverTestDeps) newResolver() *infraauthz.PermissionResolverImpl {
	evaluator := authz.NewEvaluator(authz.FixedClock(now))
	return infraauthz.NewPermissionResolver(evaluator, d.mentorRepo, d.orgRepo, d.recorder)
}

func requireReason(t *testing.T, err error, code apperror.ErrorCode, reason string) {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, reason, appErr.Message)
}

func TestPermissionResolver_AuthorizeMentor_OwnerAllowedOtherDenied(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	u1 := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	u2 := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	m1 := entity.NewMentor(u1.UserID, "m1")

	deps.mentorRepo.On("FindByID", ctx, m1.ID).Return(m1, nil)

	got, err := deps.newResolver().AuthorizeMentor(ctx, u1, authz.ActionEditMentorDetails, m1.ID)
	require.NoError(t, err)
	assert.Equal(t, m1, got)

	_, err = deps.newResolver().AuthorizeMentor(ctx, u2, authz.ActionEditMentorDetails, m1.ID)
	requireReason(t, err, apperror.CodeForbidden, "you do not have permission to edit this mentor")
}

func TestPermissionResolver_AuthorizeMentor_Anonymous(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)

	_, err := deps.newResolver().AuthorizeMentor(ctx, authz.Anonymous(), authz.ActionEditMentorPrivacy, uuid.New())

	requireReason(t, err, apperror.CodeUnauthorized, "Only authenticated users")
	require.Len(t, deps.recorder.decisions, 1)
	assert.Equal(t, recordedDecision{action: "edit-mentor-privacy", outcome: "unauthenticated"}, deps.recorder.decisions[0])
}

func TestPermissionResolver_AuthorizeMentor_OwnMentorMissing(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)

	deps.mentorRepo.On("FindByUserID", ctx, actor.UserID).Return(nil, apperror.NewResourceNotFoundError("mentor"))

	_, err := deps.newResolver().AuthorizeMentor(ctx, actor, authz.ActionEditMentorDetails, uuid.Nil)

	requireReason(t, err, apperror.CodeNotFound, "you do not have a mentor")
}

func TestPermissionResolver_AuthorizeMentor_MissingMentor_InvalidMentor(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	id := uuid.New()

	deps.mentorRepo.On("FindByID", ctx, id).Return(nil, apperror.NewResourceNotFoundError("mentor"))

	_, err := deps.newResolver().AuthorizeMentor(ctx, actor, authz.ActionEditMentorDetails, id)

	requireReason(t, err, apperror.CodeNotFound, "invalid mentor")
}

func TestPermissionResolver_AuthorizeMentor_RepositoryError(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	id := uuid.New()
	dbErr := errors.New("connection refused")

	deps.mentorRepo.On("FindByID", ctx, id).Return(nil, dbErr)

	_, err := deps.newResolver().AuthorizeMentor(ctx, actor, authz.ActionEditMentorDetails, id)

	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, deps.recorder.decisions)
}

func TestPermissionResolver_AuthorizeMentor_DelegatedEditThroughOrgAdmin(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	org := uuid.New()
	m := entity.NewMentor(uuid.New(), "m")
	perm, err := entity.NewOrgPermission(org, valueobject.PermissionLevelShare, valueobject.PermissionLevelManage)
	require.NoError(t, err)
	m.OrgPermissions = []entity.OrgPermission{perm}

	deps.mentorRepo.On("FindByID", ctx, m.ID).Return(m, nil)
	deps.orgRepo.On("FindMembershipsByUserID", mock.Anything, actor.UserID).Return([]entity.OrgMembership{
		{OrgID: org, Role: valueobject.OrgRoleAdmin},
	}, nil)

	_, err = deps.newResolver().AuthorizeMentor(ctx, actor, authz.ActionEditMentorSubjects, m.ID)

	require.NoError(t, err)
}

func TestPermissionResolver_AuthorizeMentorView_DirectLinkPrivate(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	m := entity.NewMentor(uuid.New(), "m")
	m.DirectLinkPrivate = true

	deps.mentorRepo.On("FindByID", ctx, m.ID).Return(m, nil)

	fresh := &authz.LeftHomePageData{Time: now.Add(-time.Hour), TargetMentors: []uuid.UUID{m.ID}}
	got, err := deps.newResolver().AuthorizeMentorView(ctx, authz.Anonymous(), m.ID, fresh)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	stale := &authz.LeftHomePageData{Time: now.Add(-6 * time.Hour), TargetMentors: []uuid.UUID{m.ID}}
	_, err = deps.newResolver().AuthorizeMentorView(ctx, authz.Anonymous(), m.ID, stale)
	requireReason(t, err, apperror.CodeForbidden, "mentor can only be accessed via homepage")
}

func TestPermissionResolver_AuthorizeOrganization(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	member := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	outsider := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	org, err := entity.NewOrganization("USC", "usc", true, []entity.Member{
		{UserID: member.UserID, Role: valueobject.OrgRoleUser},
	})
	require.NoError(t, err)

	deps.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)

	_, err = deps.newResolver().AuthorizeOrganization(ctx, member, authz.ActionViewOrganization, org.ID)
	require.NoError(t, err)

	_, err = deps.newResolver().AuthorizeOrganization(ctx, member, authz.ActionEditOrganization, org.ID)
	requireReason(t, err, apperror.CodeForbidden, "you do not have permission to edit organization")

	_, err = deps.newResolver().AuthorizeOrganization(ctx, outsider, authz.ActionViewOrganization, org.ID)
	requireReason(t, err, apperror.CodeForbidden, "organization is private and you do not have permission to access")
}

func TestPermissionResolver_Authorize_UserPermissions(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	admin := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	target := entity.NewUser("u@example.com", "u")

	err := deps.newResolver().Authorize(ctx, admin, authz.ActionEditUserPermissions, authz.Resource{
		TargetUserID:  target.ID,
		TargetUser:    target,
		RequestedRole: valueobject.UserRoleSuperAdmin,
	})

	requireReason(t, err, apperror.CodeForbidden, "only super admins can give super admin permissions")
}

func TestPermissionResolver_Memberships(t *testing.T) {
	ctx := context.Background()
	deps := newResolverTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	org := uuid.New()

	deps.orgRepo.On("FindMembershipsByUserID", mock.Anything, actor.UserID).Return([]entity.OrgMembership{
		{OrgID: org, Role: valueobject.OrgRoleContentManager},
	}, nil)

	memberships, err := deps.newResolver().Memberships(ctx, actor)
	require.NoError(t, err)
	role, ok := memberships.RoleIn(org)
	assert.True(t, ok)
	assert.Equal(t, valueobject.OrgRoleContentManager, role)

	anon, err := deps.newResolver().Memberships(ctx, authz.Anonymous())
	require.NoError(t, err)
	assert.Empty(t, anon)
}

// blockingOrgRepo は所属組織の取得を解放されるまで止め、渡されたコンテキストのキャンセルに従います
type blockingOrgRepo struct {
	*mocks.MockOrganizationRepository
	rows    []entity.OrgMembership
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingOrgRepo) FindMembershipsByUserID(ctx context.Context, _ uuid.UUID) ([]entity.OrgMembership, error) {
	r.once.Do(func() { close(r.started) })
	select {
	case <-r.release:
		return r.rows, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestPermissionResolver_Memberships_CancelledCallerDoesNotFailOthers(t *testing.T) {
	org := uuid.New()
	repo := &blockingOrgRepo{
		MockOrganizationRepository: mocks.NewMockOrganizationRepository(t),
		rows:                       []entity.OrgMembership{{OrgID: org, Role: valueobject.OrgRoleAdmin}},
		started:                    make(chan struct{}),
		release:                    make(chan struct{}),
	}
	resolver := infraauthz.NewPermissionResolver(authz.NewEvaluator(authz.FixedClock(now)), mocks.NewMockMentorRepository(t), repo, &fakeRecorder{})
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)

	type result struct {
		memberships authz.Memberships
		err         error
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	defer cancelFirst()
	first := make(chan result, 1)
	go func() {
		m, err := resolver.Memberships(firstCtx, actor)
		first <- result{m, err}
	}()
	<-repo.started

	second := make(chan result, 1)
	go func() {
		m, err := resolver.Memberships(context.Background(), actor)
		second <- result{m, err}
	}()
	// 2件目が同じ取得処理に合流するのを待つ
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	select {
	case res := <-first:
		assert.ErrorIs(t, res.err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(repo.release)
	select {
	case res := <-second:
		require.NoError(t, res.err)
		role, ok := res.memberships.RoleIn(org)
		assert.True(t, ok)
		assert.Equal(t, valueobject.OrgRoleAdmin, role)
	case <-time.After(time.Second):
		t.Fatal("second caller did not return")
	}
}
