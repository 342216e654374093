package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/request"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/response"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/presenter"
	orgcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/organization/command"
	orgqry "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/organization/query"
)

// OrganizationHandler は組織関連のHTTPハンドラーです
type OrganizationHandler struct {
	// Commands
	createOrgCmd       *orgcmd.CreateOrganizationCommand
	updateOrgCmd       *orgcmd.UpdateOrganizationCommand
	updateOrgConfigCmd *orgcmd.UpdateOrganizationConfigCommand

	// Queries
	getOrgQuery *orgqry.GetOrganizationQuery
}

// NewOrganizationHandler は新しいOrganizationHandlerを作成します
func NewOrganizationHandler(
	createOrgCmd *orgcmd.CreateOrganizationCommand,
	updateOrgCmd *orgcmd.UpdateOrganizationCommand,
	updateOrgConfigCmd *orgcmd.UpdateOrganizationConfigCommand,
	getOrgQuery *orgqry.GetOrganizationQuery,
) *OrganizationHandler {
	return &OrganizationHandler{
		createOrgCmd:       createOrgCmd,
		updateOrgCmd:       updateOrgCmd,
		updateOrgConfigCmd: updateOrgConfigCmd,
		getOrgQuery:        getOrgQuery,
	}
}

// CreateOrganization は組織を作成します
// @Summary 組織作成
// @Tags Organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body request.CreateOrganizationRequest true "組織情報"
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c echo.Context) error {
	var req request.CreateOrganizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	members, err := toMemberInputs(req.Members)
	if err != nil {
		return err
	}

	output, err := h.createOrgCmd.Execute(c.Request().Context(), orgcmd.CreateOrganizationInput{
		Actor:     middleware.GetActor(c),
		Name:      req.Name,
		Subdomain: req.Subdomain,
		IsPrivate: req.IsPrivate,
		Members:   members,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.ToOrganizationResponse(output.Organization))
}

// GetOrganization は組織を取得します
// @Summary 組織取得
// @Tags Organizations
// @Produce json
// @Param id path string true "組織ID"
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c echo.Context) error {
	orgID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.getOrgQuery.Execute(c.Request().Context(), orgqry.GetOrganizationInput{
		Actor: middleware.GetActor(c),
		OrgID: orgID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToOrganizationResponseWithAccess(output.Organization, output.CanEdit))
}

// UpdateOrganization は組織を更新します
// @Summary 組織更新
// @Tags Organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "組織ID"
// @Param body body request.UpdateOrganizationRequest true "更新内容"
// @Router /organizations/{id} [patch]
func (h *OrganizationHandler) UpdateOrganization(c echo.Context) error {
	orgID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req request.UpdateOrganizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	members, err := toMemberInputs(req.Members)
	if err != nil {
		return err
	}
	perms, err := toOrgPermissionInputs(req.Permissions)
	if err != nil {
		return err
	}

	output, err := h.updateOrgCmd.Execute(c.Request().Context(), orgcmd.UpdateOrganizationInput{
		Actor:       middleware.GetActor(c),
		OrgID:       orgID,
		Name:        req.Name,
		Subdomain:   req.Subdomain,
		IsPrivate:   req.IsPrivate,
		Members:     members,
		Permissions: perms,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToOrganizationResponse(output.Organization))
}

// UpdateOrganizationConfig は組織の設定を更新します
// @Summary 組織設定更新
// @Tags Organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "組織ID"
// @Router /organizations/{id}/config [put]
func (h *OrganizationHandler) UpdateOrganizationConfig(c echo.Context) error {
	orgID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req request.UpdateOrganizationConfigRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.updateOrgConfigCmd.Execute(c.Request().Context(), orgcmd.UpdateOrganizationConfigInput{
		Actor:  middleware.GetActor(c),
		OrgID:  orgID,
		Config: req.Config,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToOrganizationResponse(output.Organization))
}

// toMemberInputs はリクエストをユースケースの入力に変換します
// nilはメンバーの変更なしを意味します
func toMemberInputs(reqs []request.MemberRequest) ([]orgcmd.MemberInput, error) {
	if reqs == nil {
		return nil, nil
	}
	out := make([]orgcmd.MemberInput, 0, len(reqs))
	for _, r := range reqs {
		ids, err := parseIDs("members.userId", []string{r.UserID})
		if err != nil {
			return nil, err
		}
		out = append(out, orgcmd.MemberInput{UserID: ids[0], Role: r.Role})
	}
	return out, nil
}
