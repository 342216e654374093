package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// DefaultExportURLExpiry はエクスポートのダウンロードURLの有効期限です
const DefaultExportURLExpiry = 15 * time.Minute

// ExportMentorInput はメンターエクスポートの入力を定義します
type ExportMentorInput struct {
	Actor    authz.Actor
	MentorID uuid.UUID
}

// ExportMentorOutput はメンターエクスポートの出力を定義します
type ExportMentorOutput struct {
	ObjectKey   string
	DownloadURL string
	ExpiresAt   time.Time
}

// mentorExport はエクスポートファイルの形式です
type mentorExport struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Mentor     exportedMentor   `json:"mentor"`
	Answers    []exportedAnswer `json:"answers"`
}

type exportedMentor struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	FirstName  string      `json:"firstName"`
	Title      string      `json:"title"`
	MentorType string      `json:"mentorType"`
	SubjectIDs []uuid.UUID `json:"subjects"`
}

type exportedAnswer struct {
	QuestionID uuid.UUID `json:"question"`
	Transcript string    `json:"transcript"`
	Markdown   string    `json:"markdownTranscript"`
	Status     string    `json:"status"`
}

func newMentorExport(now time.Time, m *entity.Mentor, answers []*entity.Answer) mentorExport {
	out := mentorExport{
		ExportedAt: now,
		Mentor: exportedMentor{
			ID:         m.ID,
			Name:       m.Name,
			FirstName:  m.FirstName,
			Title:      m.Title,
			MentorType: string(m.MentorType),
			SubjectIDs: m.SubjectIDs,
		},
		Answers: make([]exportedAnswer, 0, len(answers)),
	}
	for _, a := range answers {
		out.Answers = append(out.Answers, exportedAnswer{
			QuestionID: a.QuestionID,
			Transcript: a.Transcript,
			Markdown:   a.Markdown,
			Status:     string(a.Status),
		})
	}
	return out
}

// ExportMentorCommand はメンターと回答をオブジェクトストレージにエクスポートするコマンドです
type ExportMentorCommand struct {
	answerRepo repository.AnswerRepository
	resolver   authz.PermissionResolver
	storage    service.ExportStorage
	audit      service.AuditService
	urlExpiry  time.Duration
}

// NewExportMentorCommand は新しいExportMentorCommandを作成します
func NewExportMentorCommand(
	answerRepo repository.AnswerRepository,
	resolver authz.PermissionResolver,
	storage service.ExportStorage,
	audit service.AuditService,
	urlExpiry time.Duration,
) *ExportMentorCommand {
	if urlExpiry <= 0 {
		urlExpiry = DefaultExportURLExpiry
	}
	return &ExportMentorCommand{
		answerRepo: answerRepo,
		resolver:   resolver,
		storage:    storage,
		audit:      audit,
		urlExpiry:  urlExpiry,
	}
}

// Execute はメンターをエクスポートし、ダウンロードURLを返します
func (c *ExportMentorCommand) Execute(ctx context.Context, input ExportMentorInput) (*ExportMentorOutput, error) {
	// 1. 権限チェック（エクスポートは編集権限を要求）
	mentor, err := c.resolver.AuthorizeMentor(ctx, input.Actor, authz.ActionEditMentorDetails, input.MentorID)
	if err != nil {
		return nil, err
	}

	// 2. 回答の取得
	answers, err := c.answerRepo.FindByMentorID(ctx, mentor.ID)
	if err != nil {
		return nil, err
	}

	// 3. シリアライズして保存
	now := time.Now().UTC()
	data, err := json.Marshal(newMentorExport(now, mentor, answers))
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	key := fmt.Sprintf("exports/%s/%s.json", mentor.ID, now.Format("20060102T150405Z"))
	if err := c.storage.PutObject(ctx, key, data, "application/json"); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	// 4. ダウンロードURLの発行
	url, err := c.storage.GenerateGetURL(ctx, key, c.urlExpiry)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	c.audit.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionMentorExport,
		ResourceType: entity.AuditResourceMentor,
		ResourceID:   &mentor.ID,
		Details:      map[string]interface{}{"object_key": key},
	})

	return &ExportMentorOutput{
		ObjectKey:   key,
		DownloadURL: url.URL,
		ExpiresAt:   url.ExpiresAt,
	}, nil
}
