package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/anuragpande549/AI-Commerce/internal/config"
	"github.com/anuragpande549/AI-Commerce/internal/infra/assist"
	"github.com/anuragpande549/AI-Commerce/internal/infra/session"
	"github.com/anuragpande549/AI-Commerce/internal/infra/storage"
	"github.com/anuragpande549/AI-Commerce/internal/platform/logger"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// 外側で作る部品（DB接続・外部API・カート置き場）
type Deps struct {
	Config    config.Config
	Log       *logger.Logger
	DB        *gorm.DB
	Carts     repo.CartStore
	Uploader  usecase.ImageUploader
	Generator usecase.TextGenerator
}

// 依存を組み立てて、ルート登録済みのechoを返す
func New(d Deps) *echo.Echo {
	if d.Log == nil {
		d.Log = logger.NewNop()
	}
	if d.Carts == nil {
		d.Carts = session.NewCartStore(d.Config.CartIdleTTL)
	}
	if d.Uploader == nil {
		d.Uploader = storage.Unconfigured{}
	}
	if d.Generator == nil {
		// キー無しなので呼ぶと ErrMissingAPIKey
		d.Generator = assist.NewGeminiClient("", d.Config.GeminiModel, d.Config.GeminiBaseURL, d.Config.AssistTimeout)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	useMiddlewares(e, d.Config, d.Log)
	registerRoutes(e, d)
	return e
}

// ctxが終わったら受付を止めて、処理中のリクエストを待つ
func Start(ctx context.Context, e *echo.Echo, addr string, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
