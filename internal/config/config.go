package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod（ログの形式もこれで決める）
	FEURL string // フロントURL（CORS）

	DatabaseURL string // 空なら POSTGRES_* から組み立てる

	JWTSecret string // JWT署名シークレット

	GeminiAPIKey        string
	GeminiModel         string
	GeminiBaseURL       string
	AssistTimeout       time.Duration
	AssistRatePerMinute int // 0以下なら制限なし

	GCSBucket          string // 空ならアップロード無効
	GCSCDNDomain       string
	GCSCredentialsFile string
	UploadMaxBytes     int64

	CartIdleTTL time.Duration
}

// .envを読んでから環境変数を見る（.envが無いのはOK）
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	assistRate, err := atoiOr("ASSIST_RATE_PER_MINUTE", 30)
	if err != nil {
		return Config{}, err
	}
	uploadMax, err := atoiOr("UPLOAD_MAX_BYTES", 5<<20)
	if err != nil {
		return Config{}, err
	}
	assistTimeout, err := durationOr("ASSIST_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	cartTTL, err := durationOr("CART_IDLE_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: os.Getenv("FE_URL"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:       getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		AssistTimeout:       assistTimeout,
		AssistRatePerMinute: assistRate,

		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSCDNDomain:       os.Getenv("GCS_CDN_DOMAIN"),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),
		UploadMaxBytes:     int64(uploadMax),

		CartIdleTTL: cartTTL,
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.UploadMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPLOAD_MAX_BYTES must be > 0")
	}

	return cfg, nil
}

// ":8080" の形にする
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsProd() bool {
	switch strings.ToLower(c.GoEnv) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
