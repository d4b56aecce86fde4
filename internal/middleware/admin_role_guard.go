package middleware

import (
	"net/http"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// contextに入っているroleがadminかどうかを確認します。
func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch RoleFrom(c) {
			case model.RoleAdmin:
				return next(c)
			case model.RoleAnonymous:
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			default:
				//userは拒否
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}
		}
	}
}
