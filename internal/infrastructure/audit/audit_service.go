package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

const writeTimeout = 5 * time.Second

// Service は監査ログの非同期書き込みサービスです
// 書き込みの失敗は権限変更そのものを失敗させません
type Service struct {
	repo     repository.AuditLogRepository
	entries  chan service.AuditEntry
	done     chan struct{}
	stopOnce sync.Once
	dropped  DropCounter
}

// DropCounter はバッファ溢れで破棄したエントリ数を記録します
type DropCounter interface {
	Inc()
}

// Option はServiceのオプションです
type Option func(*Service)

// WithDropCounter は破棄件数の記録先を設定します
func WithDropCounter(counter DropCounter) Option {
	return func(s *Service) {
		s.dropped = counter
	}
}

// NewService は新しいAudit Serviceを作成します
func NewService(repo repository.AuditLogRepository, bufferSize int, opts ...Option) *Service {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	s := &Service{
		repo:    repo,
		entries: make(chan service.AuditEntry, bufferSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.processLoop()
	return s
}

// Log は監査ログエントリをキューに追加します（非ブロッキング）
// リクエストIDが未設定の場合はコンテキストから補完します
func (s *Service) Log(ctx context.Context, entry service.AuditEntry) {
	if entry.RequestID == "" {
		entry.RequestID = logger.RequestIDFromContext(ctx)
	}
	select {
	case s.entries <- entry:
	default:
		if s.dropped != nil {
			s.dropped.Inc()
		}
		logger.Warn(ctx, "audit log buffer full, dropping entry",
			"action", string(entry.Action),
			"resource_type", string(entry.ResourceType),
		)
	}
}

// processLoop はバッファからエントリを読み取り永続化します
func (s *Service) processLoop() {
	defer close(s.done)
	for entry := range s.entries {
		log := &entity.AuditLog{
			ID:           uuid.New(),
			ActorID:      entry.ActorID,
			ActorRole:    entry.ActorRole,
			Action:       entry.Action,
			ResourceType: entry.ResourceType,
			ResourceID:   entry.ResourceID,
			Details:      entry.Details,
			RequestID:    entry.RequestID,
			CreatedAt:    time.Now(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := s.repo.Create(ctx, log); err != nil {
			slog.Error("failed to write audit log",
				"error", err,
				"action", string(entry.Action),
				"request_id", entry.RequestID,
			)
		}
		cancel()
	}
}

// Shutdown はキューを閉じ、残りのエントリを書き終えるまで待ちます
func (s *Service) Shutdown() {
	s.stopOnce.Do(func() { close(s.entries) })
	<-s.done
}

var _ service.AuditService = (*Service)(nil)
