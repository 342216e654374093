package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
)

// MockAuditService is a mock of service.AuditService
type MockAuditService struct {
	mock.Mock
}

func NewMockAuditService(t *testing.T) *MockAuditService {
	m := &MockAuditService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuditService) Log(ctx context.Context, entry service.AuditEntry) {
	m.Called(ctx, entry)
}

// MockAuditLogRepository is a mock of repository.AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func NewMockAuditLogRepository(t *testing.T) *MockAuditLogRepository {
	m := &MockAuditLogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// MockExportStorage is a mock of service.ExportStorage
type MockExportStorage struct {
	mock.Mock
}

func NewMockExportStorage(t *testing.T) *MockExportStorage {
	m := &MockExportStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockExportStorage) PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error {
	args := m.Called(ctx, objectKey, data, contentType)
	return args.Error(0)
}

func (m *MockExportStorage) GenerateGetURL(ctx context.Context, objectKey string, expiry time.Duration) (*service.PresignedURL, error) {
	args := m.Called(ctx, objectKey, expiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PresignedURL), args.Error(1)
}

// MockDisabledUserRegistry is a mock of service.DisabledUserRegistry
type MockDisabledUserRegistry struct {
	mock.Mock
}

func NewMockDisabledUserRegistry(t *testing.T) *MockDisabledUserRegistry {
	m := &MockDisabledUserRegistry{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDisabledUserRegistry) MarkDisabled(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockDisabledUserRegistry) IsDisabled(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
