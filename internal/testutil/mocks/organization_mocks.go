package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// MockOrganizationRepository is a mock of repository.OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func NewMockOrganizationRepository(t *testing.T) *MockOrganizationRepository {
	m := &MockOrganizationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) FindMembershipsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.OrgMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrgMembership), args.Error(1)
}
