package db

import (
	"fmt"
	"os"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(databaseURL string, silent bool) (*gorm.DB, error) {
	gcfg := &gorm.Config{}
	if silent {
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	// DATABASE_URL があれば最優先で使う
	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), gcfg)
	}

	host := getenv("POSTGRES_HOST", "localhost")
	port := getenv("POSTGRES_PORT", "5432")
	user := getenv("POSTGRES_USER", "postgres")
	pass := getenv("POSTGRES_PASSWORD", "postgres")
	name := getenv("POSTGRES_DB", "app")
	ssl := getenv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl,
	)

	return gorm.Open(postgres.Open(dsn), gcfg)
}

// 商品・注文・注文明細の3テーブル
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
