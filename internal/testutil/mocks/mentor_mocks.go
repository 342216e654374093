package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
)

// MockMentorRepository is a mock of repository.MentorRepository
type MockMentorRepository struct {
	mock.Mock
}

func NewMockMentorRepository(t *testing.T) *MockMentorRepository {
	m := &MockMentorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMentorRepository) Create(ctx context.Context, mentor *entity.Mentor) error {
	args := m.Called(ctx, mentor)
	return args.Error(0)
}

func (m *MockMentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mentor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mentor), args.Error(1)
}

func (m *MockMentorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mentor), args.Error(1)
}

func (m *MockMentorRepository) Update(ctx context.Context, mentor *entity.Mentor) error {
	args := m.Called(ctx, mentor)
	return args.Error(0)
}

func (m *MockMentorRepository) List(ctx context.Context, filter repository.MentorFilter) ([]*entity.Mentor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Mentor), args.Error(1)
}

func (m *MockMentorRepository) ArchiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMentorRepository) ArchiveOwnedByDisabledUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAnswerRepository is a mock of repository.AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func NewMockAnswerRepository(t *testing.T) *MockAnswerRepository {
	m := &MockAnswerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAnswerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Answer), args.Error(1)
}

func (m *MockAnswerRepository) FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Answer, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Answer), args.Error(1)
}

func (m *MockAnswerRepository) Update(ctx context.Context, answer *entity.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}
