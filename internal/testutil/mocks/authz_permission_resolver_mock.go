package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// MockPermissionResolver is a mock of authz.PermissionResolver
type MockPermissionResolver struct {
	mock.Mock
}

func NewMockPermissionResolver(t *testing.T) *MockPermissionResolver {
	m := &MockPermissionResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPermissionResolver) Memberships(ctx context.Context, actor authz.Actor) (authz.Memberships, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(authz.Memberships), args.Error(1)
}

func (m *MockPermissionResolver) AuthorizeMentor(ctx context.Context, actor authz.Actor, action authz.Action, mentorID uuid.UUID) (*entity.Mentor, error) {
	args := m.Called(ctx, actor, action, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mentor), args.Error(1)
}

func (m *MockPermissionResolver) AuthorizeMentorView(ctx context.Context, actor authz.Actor, mentorID uuid.UUID, homePage *authz.LeftHomePageData) (*entity.Mentor, error) {
	args := m.Called(ctx, actor, mentorID, homePage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mentor), args.Error(1)
}

func (m *MockPermissionResolver) AuthorizeOrganization(ctx context.Context, actor authz.Actor, action authz.Action, orgID uuid.UUID) (*entity.Organization, error) {
	args := m.Called(ctx, actor, action, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Organization), args.Error(1)
}

func (m *MockPermissionResolver) Authorize(ctx context.Context, actor authz.Actor, action authz.Action, res authz.Resource) error {
	args := m.Called(ctx, actor, action, res)
	return args.Error(0)
}
