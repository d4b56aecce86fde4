package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/anuragpande549/AI-Commerce/internal/config"
	"github.com/anuragpande549/AI-Commerce/internal/infra/assist"
	"github.com/anuragpande549/AI-Commerce/internal/infra/db"
	"github.com/anuragpande549/AI-Commerce/internal/infra/session"
	"github.com/anuragpande549/AI-Commerce/internal/infra/storage"
	"github.com/anuragpande549/AI-Commerce/internal/platform/logger"
	"github.com/anuragpande549/AI-Commerce/internal/server"
	"github.com/anuragpande549/AI-Commerce/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(cfg.DatabaseURL, cfg.IsProd())
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate failed", "error", err)
	}

	//画像置き場（バケット未設定ならアップロードだけ失敗する）
	var uploader usecase.ImageUploader = storage.Unconfigured{}
	gcs, err := storage.NewGCSUploader(ctx, cfg.GCSBucket, cfg.GCSCDNDomain, cfg.GCSCredentialsFile)
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Warn("GCS_BUCKET is empty; image upload disabled")
	case err != nil:
		log.Fatal("storage client failed", "error", err)
	default:
		uploader = gcs
		defer gcs.Close()
	}

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY is empty; assist endpoints will fail")
	}
	gemini := assist.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.AssistTimeout)

	e := server.New(server.Deps{
		Config:    cfg,
		Log:       log,
		DB:        gormDB,
		Carts:     session.NewCartStore(cfg.CartIdleTTL),
		Uploader:  uploader,
		Generator: gemini,
	})

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr(), log); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
