package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/anuragpande549/AI-Commerce/internal/config"
	"github.com/anuragpande549/AI-Commerce/internal/infra/db/dbtest"
	"github.com/anuragpande549/AI-Commerce/internal/server"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
)

const testSecret = "e2e-secret"

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

type fakeGenerator struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (g *fakeGenerator) set(texts []string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.texts, g.err = texts, err
}

func (g *fakeGenerator) GenerateText(ctx context.Context, prompt string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.texts, g.err
}

type fakeUploader struct {
	mu      sync.Mutex
	gotName string
}

func (u *fakeUploader) name() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.gotName
}

func (u *fakeUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	u.mu.Lock()
	u.gotName = filename
	u.mu.Unlock()
	_, _ = io.Copy(io.Discard, body)
	return "https://cdn.example.com/products/" + filename, nil
}

type testEnv struct {
	client   *TestClient
	gen      *fakeGenerator
	uploader *fakeUploader
}

// sqliteのDBでサーバーを立てる
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gen := &fakeGenerator{}
	up := &fakeUploader{}
	cfg := config.Config{
		JWTSecret:           testSecret,
		AssistRatePerMinute: 0,
		UploadMaxBytes:      1 << 10,
		CartIdleTTL:         time.Hour,
	}

	e := server.New(server.Deps{
		Config:    cfg,
		DB:        dbtest.Open(t),
		Uploader:  up,
		Generator: gen,
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New failed: %v", err)
	}

	return &testEnv{
		client: &TestClient{
			BaseURL: strings.TrimRight(srv.URL, "/"),
			HTTP:    &http.Client{Jar: jar, Timeout: 10 * time.Second},
		},
		gen:      gen,
		uploader: up,
	}
}

func token(t *testing.T, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "tester",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ProductDTO struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	Image    string          `json:"image"`
	LowStock bool            `json:"low_stock"`
}

type CategoryDTO struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Count int    `json:"count"`
}

type CartItemDTO struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type CartDTO struct {
	Items []CartItemDTO   `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
	Open  bool            `json:"open"`
}

type OrderItemDTO struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type OrderDTO struct {
	ID       int64           `json:"id"`
	Customer string          `json:"customer"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status"`
	Items    []OrderItemDTO  `json:"items"`
}

func (c *TestClient) doJSON(
	t *testing.T,
	method string,
	path string,
	bearer string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.send(t, req)
}

func (c *TestClient) send(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(data))
	}
	return v
}

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func mustStatus(t *testing.T, resp *http.Response, body []byte, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}
