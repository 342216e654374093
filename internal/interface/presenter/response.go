package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response は統一レスポンス構造を定義します
type Response struct {
	Data interface{} `json:"data"`
	Meta interface{} `json:"meta"`
}

// Page はオフセット方式の一覧情報を定義します
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	// NextOffset は次ページのオフセットです。続きがない場合は省略されます
	NextOffset *int `json:"nextOffset,omitempty"`
}

// Meta はメタ情報を定義します
type Meta struct {
	Message string `json:"message,omitempty"`
	Page    *Page  `json:"page,omitempty"`
}

// OK は成功レスポンスを返します
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: nil,
	})
}

// Created は作成成功レスポンスを返します
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Data: data,
		Meta: nil,
	})
}

// NoContent はコンテンツなしレスポンスを返します
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// List はリスト取得レスポンスを返します
func List(c echo.Context, data interface{}, page *Page) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: Meta{Page: page},
	})
}

// DefaultLimit はデフォルトの取得件数です
const DefaultLimit = 50

// MaxLimit は最大の取得件数です
const MaxLimit = 200

// NormalizePage は一覧取得パラメータを正規化します
func NormalizePage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
