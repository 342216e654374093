package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// pathID はパスパラメータをUUIDとして取得します
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewValidationError("invalid "+name, []apperror.FieldError{
			{Field: name, Message: "must be a valid UUID"},
		})
	}
	return id, nil
}

// optionalID は任意のID文字列をUUIDに変換します
// 書式はリクエストのバリデーションで検証済みであることを前提とします
func optionalID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

// parseIDs はID文字列のスライスをUUIDに変換します
func parseIDs(field string, ss []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, apperror.NewValidationError("invalid "+field, []apperror.FieldError{
				{Field: field, Message: "must be a valid UUID"},
			})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// bind はリクエストボディを読み込んで検証します
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperror.NewInvalidRequestError("invalid request body")
	}
	return c.Validate(req)
}
