package handler

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/request"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/response"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/presenter"
	mentorcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/command"
	mentorqry "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/query"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// MentorHandler はメンター関連のHTTPハンドラーです
type MentorHandler struct {
	// Commands
	ensureMentorCmd   *mentorcmd.EnsureMentorCommand
	updateDetailsCmd  *mentorcmd.UpdateMentorDetailsCommand
	updatePrivacyCmd  *mentorcmd.UpdateMentorPrivacyCommand
	updateSubjectsCmd *mentorcmd.UpdateMentorSubjectsCommand
	updateAnswerCmd   *mentorcmd.UpdateAnswerCommand
	approveMentorCmd  *mentorcmd.ApproveMentorCommand
	exportMentorCmd   *mentorcmd.ExportMentorCommand

	// Queries
	getMentorQuery      *mentorqry.GetMentorQuery
	listOrgMentorsQuery *mentorqry.ListOrganizationMentorsQuery
}

// NewMentorHandler は新しいMentorHandlerを作成します
func NewMentorHandler(
	ensureMentorCmd *mentorcmd.EnsureMentorCommand,
	updateDetailsCmd *mentorcmd.UpdateMentorDetailsCommand,
	updatePrivacyCmd *mentorcmd.UpdateMentorPrivacyCommand,
	updateSubjectsCmd *mentorcmd.UpdateMentorSubjectsCommand,
	updateAnswerCmd *mentorcmd.UpdateAnswerCommand,
	approveMentorCmd *mentorcmd.ApproveMentorCommand,
	exportMentorCmd *mentorcmd.ExportMentorCommand,
	getMentorQuery *mentorqry.GetMentorQuery,
	listOrgMentorsQuery *mentorqry.ListOrganizationMentorsQuery,
) *MentorHandler {
	return &MentorHandler{
		ensureMentorCmd:     ensureMentorCmd,
		updateDetailsCmd:    updateDetailsCmd,
		updatePrivacyCmd:    updatePrivacyCmd,
		updateSubjectsCmd:   updateSubjectsCmd,
		updateAnswerCmd:     updateAnswerCmd,
		approveMentorCmd:    approveMentorCmd,
		exportMentorCmd:     exportMentorCmd,
		getMentorQuery:      getMentorQuery,
		listOrgMentorsQuery: listOrgMentorsQuery,
	}
}

// GetMentor はメンターを取得します
// @Summary メンター取得
// @Description 閲覧権限を確認してメンターを返します。ダイレクトリンク制限のあるメンターはホームページ経由の情報が必要です
// @Tags Mentors
// @Produce json
// @Param id path string true "メンターID"
// @Param leftHomePageTime query string false "ホームページを離れた時刻 (RFC3339)"
// @Param targetMentors query []string false "ホームページで選択したメンターID"
// @Router /mentors/{id} [get]
func (h *MentorHandler) GetMentor(c echo.Context) error {
	mentorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	homePage, err := leftHomePageData(c)
	if err != nil {
		return err
	}

	output, err := h.getMentorQuery.Execute(c.Request().Context(), mentorqry.GetMentorInput{
		Actor:    middleware.GetActor(c),
		MentorID: mentorID,
		HomePage: homePage,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToMentorResponse(output.Mentor))
}

// ListOrganizationMentors は組織のホームページに表示するメンター一覧を取得します
// @Summary 組織メンター一覧
// @Tags Organizations
// @Produce json
// @Param id path string true "組織ID"
// @Param limit query int false "取得件数"
// @Param offset query int false "オフセット"
// @Router /organizations/{id}/mentors [get]
func (h *MentorHandler) ListOrganizationMentors(c echo.Context) error {
	orgID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var limit, offset int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).Int("offset", &offset).BindError(); err != nil {
		return apperror.NewValidationError("invalid pagination parameters", nil)
	}
	limit, offset = presenter.NormalizePage(limit, offset)

	output, err := h.listOrgMentorsQuery.Execute(c.Request().Context(), mentorqry.ListOrganizationMentorsInput{
		Actor:  middleware.GetActor(c),
		OrgID:  orgID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return presenter.List(c, response.ToMentorResponses(output.Mentors), &presenter.Page{
		Limit:      limit,
		Offset:     offset,
		Count:      len(output.Mentors),
		NextOffset: output.NextOffset,
	})
}

// EnsureMentor は行為者自身のメンターを用意します
// @Summary 初回ログイン時のメンター作成
// @Tags Mentors
// @Produce json
// @Security BearerAuth
// @Router /me/mentor [post]
func (h *MentorHandler) EnsureMentor(c echo.Context) error {
	output, err := h.ensureMentorCmd.Execute(c.Request().Context(), mentorcmd.EnsureMentorInput{
		Actor: middleware.GetActor(c),
	})
	if err != nil {
		return err
	}

	resp := response.EnsureMentorResponse{
		Mentor:  response.ToMentorResponse(output.Mentor),
		Created: output.Created,
	}
	if output.Created {
		return presenter.Created(c, resp)
	}
	return presenter.OK(c, resp)
}

// UpdateDetails はメンターの基本情報を更新します
// @Summary メンター基本情報更新
// @Tags Mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "メンターID"
// @Param body body request.UpdateMentorDetailsRequest true "更新内容"
// @Router /mentors/{id}/details [patch]
func (h *MentorHandler) UpdateDetails(c echo.Context) error {
	mentorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req request.UpdateMentorDetailsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.updateDetailsCmd.Execute(c.Request().Context(), mentorcmd.UpdateMentorDetailsInput{
		Actor:        middleware.GetActor(c),
		MentorID:     mentorID,
		Name:         req.Name,
		FirstName:    req.FirstName,
		Title:        req.Title,
		Email:        req.Email,
		AllowContact: req.AllowContact,
		MentorType:   req.MentorType,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToMentorResponse(output.Mentor))
}

// UpdatePrivacy はメンターの公開設定を更新します
// @Summary メンター公開設定更新
// @Tags Mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "メンターID"
// @Param body body request.UpdateMentorPrivacyRequest true "公開設定"
// @Router /mentors/{id}/privacy [patch]
func (h *MentorHandler) UpdatePrivacy(c echo.Context) error {
	mentorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req request.UpdateMentorPrivacyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	perms, err := toOrgPermissionInputs(req.OrgPermissions)
	if err != nil {
		return err
	}

	output, err := h.updatePrivacyCmd.Execute(c.Request().Context(), mentorcmd.UpdateMentorPrivacyInput{
		Actor:             middleware.GetActor(c),
		MentorID:          mentorID,
		IsPrivate:         req.IsPrivate,
		DirectLinkPrivate: req.DirectLinkPrivate,
		OrgPermissions:    perms,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToMentorResponse(output.Mentor))
}

// UpdateSubjects はメンターの科目を更新します
// @Summary メンター科目更新
// @Tags Mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "メンターID"
// @Router /mentors/{id}/subjects [put]
func (h *MentorHandler) UpdateSubjects(c echo.Context) error {
	mentorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req request.UpdateMentorSubjectsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	subjectIDs, err := parseIDs("subjectIds", req.SubjectIDs)
	if err != nil {
		return err
	}

	output, err := h.updateSubjectsCmd.Execute(c.Request().Context(), mentorcmd.UpdateMentorSubjectsInput{
		Actor:            middleware.GetActor(c),
		MentorID:         mentorID,
		SubjectIDs:       subjectIDs,
		DefaultSubjectID: optionalID(req.DefaultSubjectID),
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToMentorResponse(output.Mentor))
}

// UpdateAnswer はメンターの回答を更新します
// 動画URLの変更はメンターURLの編集権限が必要です
// @Summary 回答更新
// @Tags Mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "メンターID"
// @Param answerId path string true "回答ID"
// @Router /mentors/{id}/answers/{answerId} [patch]
func (h *MentorHandler) UpdateAnswer(c echo.Context) error {
	mentorID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	answerID, err := pathID(c, "answerId")
	if err != nil {
		return err
	}

	var req request.UpdateAnswerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.updateAnswerCmd.Execute(c.Request().Context(), mentorcmd.UpdateAnswerInput{
		Actor:      middleware.GetActor(c),
		MentorID:   mentorID,
		AnswerID:   answerID,
		Transcript: req.Transcript,
		Markdown:   req.Markdown,
		Status:     req.Status,
		WebURL:     req.WebURL,
		MobileURL:  req.MobileURL,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToAnswerResponse(output.Answer))
}

// Approve はメンターの一般公開を承認します
// @Summary メンター公開承認
// @Tags Mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "メンターID"
// @Router /mentors/{id}/approve [post]
func (h *MentorHandler) Approve(c echo.Context) error {
	mentorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	req := request.ApproveMentorRequest{Approved: true}
	if c.Request().ContentLength != 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}

	output, err := h.approveMentorCmd.Execute(c.Request().Context(), mentorcmd.ApproveMentorInput{
		Actor:    middleware.GetActor(c),
		MentorID: mentorID,
		Approved: req.Approved,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToMentorResponse(output.Mentor))
}

// Export はメンターのスナップショットを書き出し、ダウンロードURLを返します
// @Summary メンターエクスポート
// @Tags Mentors
// @Produce json
// @Security BearerAuth
// @Param id path string true "メンターID"
// @Router /mentors/{id}/export [post]
func (h *MentorHandler) Export(c echo.Context) error {
	mentorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.exportMentorCmd.Execute(c.Request().Context(), mentorcmd.ExportMentorInput{
		Actor:    middleware.GetActor(c),
		MentorID: mentorID,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.MentorExportResponse{
		ObjectKey:   output.ObjectKey,
		DownloadURL: output.DownloadURL,
		ExpiresAt:   output.ExpiresAt,
	})
}

// leftHomePageData はクエリパラメータからホームページ経由の閲覧情報を組み立てます
func leftHomePageData(c echo.Context) (*authz.LeftHomePageData, error) {
	if c.QueryParam("leftHomePageTime") == "" {
		return nil, nil
	}

	var left time.Time
	var rawTargets []string
	err := echo.QueryParamsBinder(c).
		Time("leftHomePageTime", &left, time.RFC3339Nano).
		Strings("targetMentors", &rawTargets).
		BindError()
	if err != nil {
		return nil, apperror.NewValidationError("invalid leftHomePageData", []apperror.FieldError{
			{Field: "leftHomePageTime", Message: "must be an RFC3339 timestamp"},
		})
	}

	// カンマ区切りと複数指定の両方を受け付ける
	var targets []string
	for _, raw := range rawTargets {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				targets = append(targets, s)
			}
		}
	}
	ids, err := parseIDs("targetMentors", targets)
	if err != nil {
		return nil, err
	}

	return &authz.LeftHomePageData{Time: left, TargetMentors: ids}, nil
}

// toOrgPermissionInputs はリクエストをユースケースの入力に変換します
// nilは変更なしを意味します
func toOrgPermissionInputs(reqs []request.OrgPermissionRequest) ([]mentorcmd.OrgPermissionInput, error) {
	if reqs == nil {
		return nil, nil
	}
	out := make([]mentorcmd.OrgPermissionInput, 0, len(reqs))
	for _, r := range reqs {
		ids, err := parseIDs("orgId", []string{r.OrgID})
		if err != nil {
			return nil, err
		}
		out = append(out, mentorcmd.OrgPermissionInput{
			OrgID:          ids[0],
			ViewPermission: r.ViewPermission,
			EditPermission: r.EditPermission,
		})
	}
	return out, nil
}
