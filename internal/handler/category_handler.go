package handler

import (
	"net/http"
	"net/url"

	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/categories", h.list)
	e.GET("/categories/:name/products", h.products)
}

func (h *CategoryHandler) list(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) products(c echo.Context) error {
	// RawPathでルーティングされたときだけエスケープされたまま来る（%2F など）
	name := c.Param("name")
	if c.Request().URL.RawPath != "" {
		if u, err := url.PathUnescape(name); err == nil {
			name = u
		}
	}

	items, err := h.uc.ProductsByCategory(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
