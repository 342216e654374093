package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

// ErrorResponse はエラーレスポンス構造を定義します
type ErrorResponse struct {
	Error ErrorBody   `json:"error"`
	Meta  interface{} `json:"meta"`
}

// ErrorBody はエラー本体を定義します
type ErrorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// CustomHTTPErrorHandler はカスタムエラーハンドラーです
// 権限エラーのメッセージは加工せずにそのまま返します
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := toErrorBody(err)
	if status >= http.StatusInternalServerError {
		logger.Error(c.Request().Context(), "request failed", "error", err.Error())
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Error: body})
}

// StatusOf はエラーに対応するHTTPステータスを返します
func StatusOf(err error) int {
	status, _ := toErrorBody(err)
	return status
}

// toErrorBody はエラーをHTTPステータスとレスポンス本体に変換します
func toErrorBody(err error) (int, ErrorBody) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, ErrorBody{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	// Echo HTTPErrorの場合
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, ErrorBody{
			Code:    httpErrorCode(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	return http.StatusInternalServerError, ErrorBody{
		Code:    string(apperror.CodeInternalError),
		Message: "internal server error",
	}
}

// httpErrorCode はEchoのステータスをエラーコードに対応付けます
func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return string(apperror.CodeNotFound)
	case http.StatusMethodNotAllowed, http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return string(apperror.CodeInvalidRequest)
	case http.StatusUnauthorized:
		return string(apperror.CodeUnauthorized)
	case http.StatusForbidden:
		return string(apperror.CodeForbidden)
	case http.StatusTooManyRequests:
		return string(apperror.CodeRateLimitExceeded)
	case http.StatusServiceUnavailable:
		return string(apperror.CodeServiceUnavailable)
	default:
		if status >= http.StatusInternalServerError {
			return string(apperror.CodeInternalError)
		}
		return string(apperror.CodeInvalidRequest)
	}
}
