package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxRoleKey    = "role"    // model.Role
	CtxSubjectKey = "subject" // string（ログ用）
)

// bearerトークンがあれば検証してroleを取り出す。
// トークン無しは anonymous として通す（公開APIもあるため）。
// トークンが付いているのに不正なら 401。
func AuthJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				c.Set(CtxRoleKey, model.RoleAnonymous)
				return next(c)
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			role, err := parseRole(claims["role"])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxRoleKey, role)
			if sub, ok := claims["sub"].(string); ok {
				c.Set(CtxSubjectKey, sub)
			}
			return next(c)
		}
	}
}

// contextのrole。AuthJWTを通っていなければ anonymous。
func RoleFrom(c echo.Context) model.Role {
	role, ok := c.Get(CtxRoleKey).(model.Role)
	if !ok || role == "" {
		return model.RoleAnonymous
	}
	return role
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// 大文字小文字は問わない（ADMIN/admin）
func parseRole(v interface{}) (model.Role, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid role")
	}
	switch model.Role(strings.ToLower(strings.TrimSpace(s))) {
	case model.RoleAdmin:
		return model.RoleAdmin, nil
	case model.RoleUser:
		return model.RoleUser, nil
	default:
		return "", errors.New("unknown role")
	}
}
