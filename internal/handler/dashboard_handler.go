package handler

import (
	"net/http"

	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo, adminOnly echo.MiddlewareFunc) {
	e.GET("/admin/dashboard", h.get, adminOnly)
}

func (h *DashboardHandler) get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
