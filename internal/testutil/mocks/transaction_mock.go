package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// WithTransaction runs fn inline; an error from fn is returned as the rollback cause
func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
