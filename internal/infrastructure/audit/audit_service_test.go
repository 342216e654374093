package audit_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/audit"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

func TestService_Log_PersistsEntryWithRequestIDFromContext(t *testing.T) {
	repo := mocks.NewMockAuditLogRepository(t)
	actorID := uuid.New()
	targetID := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.AuditLog) bool {
		return l.Action == entity.AuditActionUserDisable &&
			*l.ActorID == actorID &&
			*l.ResourceID == targetID &&
			l.ActorRole == "ADMIN" &&
			l.RequestID == "req-1"
	})).Return(nil).Once()

	svc := audit.NewService(repo, 10)
	ctx := logger.ContextWithRequestID(context.Background(), "req-1")
	svc.Log(ctx, service.AuditEntry{
		ActorID:      &actorID,
		ActorRole:    "ADMIN",
		Action:       entity.AuditActionUserDisable,
		ResourceType: entity.AuditResourceUser,
		ResourceID:   &targetID,
	})
	svc.Shutdown()
}

func TestService_Log_RepositoryErrorDoesNotStopLoop(t *testing.T) {
	repo := mocks.NewMockAuditLogRepository(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := audit.NewService(repo, 10)
	svc.Log(context.Background(), service.AuditEntry{Action: entity.AuditActionMentorApprove})
	svc.Log(context.Background(), service.AuditEntry{Action: entity.AuditActionMentorApprove})
	svc.Shutdown()

	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestService_Shutdown_IsIdempotent(t *testing.T) {
	svc := audit.NewService(mocks.NewMockAuditLogRepository(t), 1)

	assert.NotPanics(t, func() {
		svc.Shutdown()
		svc.Shutdown()
	})
}

type countingDrops struct {
	n atomic.Int64
}

func (c *countingDrops) Inc() { c.n.Add(1) }

func TestService_Log_FullBufferCountsDrops(t *testing.T) {
	repo := mocks.NewMockAuditLogRepository(t)
	release := make(chan struct{})
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil)

	drops := &countingDrops{}
	svc := audit.NewService(repo, 1, audit.WithDropCounter(drops))
	for i := 0; i < 3; i++ {
		svc.Log(context.Background(), service.AuditEntry{Action: entity.AuditActionUserRoleChange})
	}

	assert.GreaterOrEqual(t, drops.n.Load(), int64(1))

	close(release)
	svc.Shutdown()
}
