package handler

import (
	"net/http"
	"strconv"

	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 5xxのときだけ入る。リクエストログで拾う。
const CtxErrorKey = "handler_error"

type ErrorResponse struct {
	Error string `json:"error"`
}

// 削除系の返却
type SuccessResponse struct {
	Success bool `json:"success"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := usecase.AsError(err); ok {
		status := statusFor(e.Kind)
		if status >= http.StatusInternalServerError {
			c.Set(CtxErrorKey, err)
		}
		return c.JSON(status, ErrorResponse{Error: e.Message})
	}

	//500
	c.Set(CtxErrorKey, err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func statusFor(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindValidation:
		return http.StatusBadRequest
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// :id などのパスパラメータ
func parseIDParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
