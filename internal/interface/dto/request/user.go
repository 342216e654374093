package request

// UpdateUserRoleRequest はユーザーロールの更新リクエストです
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
