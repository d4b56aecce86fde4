package handler

import (
	"net/http"

	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 説明文生成と商品要約
type AssistHandler struct {
	uc *usecase.AssistUsecase
}

func NewAssistHandler(uc *usecase.AssistUsecase) *AssistHandler {
	return &AssistHandler{uc: uc}
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type DraftRequest struct {
	Name string `json:"name"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type SummaryRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Features    []string         `json:"features"`
	Price       *decimal.Decimal `json:"price"`
}

func (h *AssistHandler) RegisterRoutes(e *echo.Echo, adminOnly echo.MiddlewareFunc) {
	e.POST("/ai", h.generate, adminOnly)
	e.POST("/ai/description", h.draft, adminOnly)
	e.POST("/assist/summary", h.summary)
}

func (h *AssistHandler) generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	text, err := h.uc.Generate(c.Request().Context(), req.Prompt)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, TextResponse{Text: text})
}

func (h *AssistHandler) draft(c echo.Context) error {
	var req DraftRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	text, err := h.uc.DraftDescription(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, TextResponse{Text: text})
}

func (h *AssistHandler) summary(c echo.Context) error {
	var req SummaryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Summarize(c.Request().Context(), usecase.SummaryInput{
		Name:        req.Name,
		Description: req.Description,
		Features:    req.Features,
		Price:       req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
