package handler

import (
	"errors"
	"net/http"

	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	uc       *usecase.UploadUsecase
	maxBytes int64
}

func NewUploadHandler(uc *usecase.UploadUsecase, maxBytes int64) *UploadHandler {
	return &UploadHandler{uc: uc, maxBytes: maxBytes}
}

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo, adminOnly echo.MiddlewareFunc) {
	e.POST("/upload", h.upload, adminOnly)
}

// multipartの file フィールド
func (h *UploadHandler) upload(c echo.Context) error {
	req := c.Request()
	if h.maxBytes > 0 {
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxBytes)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return badRequest(c, "file too large")
		case errors.Is(err, http.ErrMissingFile):
			return badRequest(c, usecase.ErrFileRequired.Error())
		default:
			return badRequest(c, "invalid upload")
		}
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "invalid upload")
	}
	defer f.Close()

	url, err := h.uc.UploadImage(req.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, UploadResponse{URL: url})
}
