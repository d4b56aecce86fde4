package server

import (
	"net/http"

	"github.com/anuragpande549/AI-Commerce/internal/config"
	"github.com/anuragpande549/AI-Commerce/internal/handler"
	"github.com/anuragpande549/AI-Commerce/internal/middleware"
	"github.com/anuragpande549/AI-Commerce/internal/platform/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func useMiddlewares(e *echo.Echo, cfg config.Config, log *logger.Logger) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(corsConfig(cfg)))
	e.Use(requestLogger(log))
	// roleだけ決める。拒否はルートごとのAdminRoleGuard。
	e.Use(middleware.AuthJWT(cfg.JWTSecret))
}

func corsConfig(cfg config.Config) echomw.CORSConfig {
	c := echomw.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Cart-Session"},
		ExposeHeaders: []string{"X-Cart-Session"},
	}
	if cfg.FEURL == "" {
		c.AllowOrigins = []string{"*"}
		return c
	}
	// cookie（cart_session）を使うので origin を固定する
	c.AllowOrigins = []string{cfg.FEURL}
	c.AllowCredentials = true
	return c
}

// 1リクエスト1行。5xxはhandlerが残したエラーも出す。
func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"role", string(middleware.RoleFrom(c)),
			}
			if sub, ok := c.Get(middleware.CtxSubjectKey).(string); ok && sub != "" {
				kv = append(kv, "subject", sub)
			}

			err := v.Error
			if err == nil {
				if herr, ok := c.Get(handler.CtxErrorKey).(error); ok {
					err = herr
				}
			}

			switch {
			case err != nil:
				log.Error("request failed", append(kv, "error", err.Error())...)
			case v.Status >= http.StatusInternalServerError:
				log.Error("request failed", kv...)
			default:
				log.Info("request", kv...)
			}
			return nil
		},
	})
}
