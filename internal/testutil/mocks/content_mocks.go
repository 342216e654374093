package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// MockMentorPanelRepository is a mock of repository.MentorPanelRepository
type MockMentorPanelRepository struct {
	mock.Mock
}

func NewMockMentorPanelRepository(t *testing.T) *MockMentorPanelRepository {
	m := &MockMentorPanelRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMentorPanelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MentorPanel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MentorPanel), args.Error(1)
}

func (m *MockMentorPanelRepository) Upsert(ctx context.Context, panel *entity.MentorPanel) error {
	args := m.Called(ctx, panel)
	return args.Error(0)
}

func (m *MockMentorPanelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserQuestionRepository is a mock of repository.UserQuestionRepository
type MockUserQuestionRepository struct {
	mock.Mock
}

func NewMockUserQuestionRepository(t *testing.T) *MockUserQuestionRepository {
	m := &MockUserQuestionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserQuestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserQuestion), args.Error(1)
}

func (m *MockUserQuestionRepository) Update(ctx context.Context, question *entity.UserQuestion) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}
