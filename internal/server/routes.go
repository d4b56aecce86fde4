package server

import (
	"github.com/anuragpande549/AI-Commerce/internal/handler"
	infraRepo "github.com/anuragpande549/AI-Commerce/internal/infra/repository"
	"github.com/anuragpande549/AI-Commerce/internal/middleware"
	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

func registerRoutes(e *echo.Echo, d Deps) {
	//Repository（GORM実装）
	productRepo := infraRepo.NewProductGormRepository(d.DB)
	orderRepo := infraRepo.NewOrderGormRepository(d.DB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(d.DB)
	txm := infraRepo.NewTxManagerGorm(d.DB)

	//Usecase
	productUC := usecase.NewProductUsecase(productRepo)
	categoryUC := usecase.NewCategoryUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, orderItemRepo)
	cartUC := usecase.NewCartUsecase(d.Carts, productRepo, orderUC)
	dashboardUC := usecase.NewDashboardUsecase(productRepo, orderRepo)
	uploadUC := usecase.NewUploadUsecase(d.Uploader)
	assistUC := usecase.NewAssistUsecase(d.Generator, assistLimiter(d.Config.AssistRatePerMinute))

	adminOnly := middleware.AdminRoleGuard()

	//Handler
	handler.RegisterHealth(e)
	handler.NewProductHandler(productUC).RegisterRoutes(e, adminOnly)
	handler.NewCategoryHandler(categoryUC).RegisterRoutes(e)
	handler.NewOrderHandler(orderUC).RegisterRoutes(e, adminOnly)
	handler.NewCartHandler(cartUC, d.Config.IsProd()).RegisterRoutes(e)
	handler.NewDashboardHandler(dashboardUC).RegisterRoutes(e, adminOnly)
	handler.NewUploadHandler(uploadUC, d.Config.UploadMaxBytes).RegisterRoutes(e, adminOnly)
	handler.NewAssistHandler(assistUC).RegisterRoutes(e, adminOnly)
}

// 1分あたりn回。0以下なら制限なし。
func assistLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
}
