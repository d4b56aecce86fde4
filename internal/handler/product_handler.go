package handler

import (
	"net/http"

	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 作成・更新の入力。省略した項目はnil。
type ProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	Image       *string          `json:"image"`
	Description *string          `json:"description"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		Image:       r.Image,
		Description: r.Description,
	}
}

// /products
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 参照は公開、変更はadminOnlyを通す
func (h *ProductHandler) RegisterRoutes(e *echo.Echo, adminOnly echo.MiddlewareFunc) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)

	e.POST("/products", h.create, adminOnly)
	e.PUT("/products/:id", h.update, adminOnly)
	e.DELETE("/products/:id", h.delete, adminOnly)
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// 無いIDでも success:true
func (h *ProductHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
