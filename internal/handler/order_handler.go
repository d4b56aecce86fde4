package handler

import (
	"net/http"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 明細。フロントのカート形式（id/qty）も受け付ける。
type OrderLineRequest struct {
	ProductID int64           `json:"product_id"`
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int64           `json:"quantity"`
	Qty       int64           `json:"qty"`
}

// customer が無ければ name を使う。total は受け取っても使わない（サーバーで計算）。
type OrderCreateRequest struct {
	Customer  string             `json:"customer"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Items     []OrderLineRequest `json:"items"`
	CartItems []OrderLineRequest `json:"cartItems"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, adminOnly echo.MiddlewareFunc) {
	e.POST("/orders", h.create)

	e.GET("/orders", h.list, adminOnly)
	e.GET("/orders/:id", h.detail, adminOnly)
	e.PUT("/orders/:id", h.updateStatus, adminOnly)
	e.DELETE("/orders/:id", h.delete, adminOnly)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	customer := req.Customer
	if customer == "" {
		customer = req.Name
	}
	lines := req.Items
	if len(lines) == 0 {
		lines = req.CartItems
	}

	items := make([]model.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, l.toCartItem())
	}

	o, err := h.uc.Create(c.Request().Context(), usecase.CreateOrderInput{
		Customer: customer,
		Email:    req.Email,
		Items:    items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	o, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	o, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (l OrderLineRequest) toCartItem() model.CartItem {
	id := l.ProductID
	if id == 0 {
		id = l.ID
	}
	qty := l.Quantity
	if qty == 0 {
		qty = l.Qty
	}
	return model.CartItem{
		ProductID: id,
		Name:      l.Name,
		Price:     l.Price,
		Image:     l.Image,
		Quantity:  qty,
	}
}
