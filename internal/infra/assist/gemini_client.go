package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrMissingAPIKey = errors.New("missing api key")

// Gemini generateContent REST API を1回呼ぶだけのクライアント。
// リトライもキャッシュもしない。
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) *GeminiClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		apiKey:     strings.TrimSpace(apiKey),
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer("ai-commerce/assist"),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// 候補ごとに先頭partのテキストを返す。テキストの無い候補は飛ばす。
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "gemini.generate_content",
		trace.WithAttributes(
			attribute.String("gemini.model", c.model),
			attribute.Int("prompt.length", len(prompt)),
		),
	)
	defer span.End()

	texts, err := c.generate(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("candidate.count", len(texts)))
	return texts, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) ([]string, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var out generateResponse
	decodeErr := json.Unmarshal(raw, &out)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// 相手のメッセージがあればそのまま返す
		if decodeErr == nil && out.Error != nil && out.Error.Message != "" {
			return nil, fmt.Errorf("gemini: %s", out.Error.Message)
		}
		return nil, fmt.Errorf("gemini: status %d", res.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	texts := make([]string, 0, len(out.Candidates))
	for _, cand := range out.Candidates {
		if len(cand.Content.Parts) == 0 {
			continue
		}
		texts = append(texts, cand.Content.Parts[0].Text)
	}
	return texts, nil
}
