package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	"github.com/anuragpande549/AI-Commerce/internal/validator"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const fallbackDescription = "No description generated."

// 文章生成の外部API。候補ごとの先頭テキストを返す（0件もありうる）。
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) ([]string, error)
}

type AssistUsecase struct {
	gen     TextGenerator
	limiter *rate.Limiter // nilなら制限なし
}

func NewAssistUsecase(gen TextGenerator, limiter *rate.Limiter) *AssistUsecase {
	return &AssistUsecase{gen: gen, limiter: limiter}
}

type SummaryInput struct {
	Name        string
	Description string
	Features    []string
	Price       *decimal.Decimal
}

// 候補が無いときは固定文言を返す
func (u *AssistUsecase) Generate(ctx context.Context, prompt string) (string, error) {
	if err := validator.Prompt(prompt); err != nil {
		return "", NewValidationError(err)
	}

	texts, err := u.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	if len(texts) == 0 || texts[0] == "" {
		return fallbackDescription, nil
	}
	return texts[0], nil
}

// 管理画面の「説明文を下書き」ボタン
func (u *AssistUsecase) DraftDescription(ctx context.Context, name string) (string, error) {
	if err := validator.Name(name); err != nil {
		return "", NewValidationError(err)
	}
	prompt := fmt.Sprintf("Write a short, punchy ecommerce product description for %s. Keep it under 50 words.", strings.TrimSpace(name))
	return u.Generate(ctx, prompt)
}

// JSONで返すよう頼み、```json ... ``` の囲みは外してから読む
func (u *AssistUsecase) Summarize(ctx context.Context, in SummaryInput) (model.ProductSummary, error) {
	texts, err := u.call(ctx, summaryPrompt(in))
	if err != nil {
		return model.ProductSummary{}, err
	}
	if len(texts) == 0 {
		return model.ProductSummary{}, NewAdapterError("no summary generated", nil)
	}

	var out model.ProductSummary
	if err := json.Unmarshal([]byte(stripCodeFence(texts[0])), &out); err != nil {
		return model.ProductSummary{}, NewAdapterError("invalid summary format", err)
	}
	if out.Pros == nil {
		out.Pros = []string{}
	}
	if out.Cons == nil {
		out.Cons = []string{}
	}
	return out, nil
}

func (u *AssistUsecase) call(ctx context.Context, prompt string) ([]string, error) {
	if u.limiter != nil && !u.limiter.Allow() {
		return nil, NewRateLimitedError("too many assist requests")
	}
	texts, err := u.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, NewAdapterError(err.Error(), err)
	}
	return texts, nil
}

func summaryPrompt(in SummaryInput) string {
	var b strings.Builder
	b.WriteString("Summarize this product for an e-commerce buyer. Be clear, persuasive, and friendly.\n")
	b.WriteString(`Respond with JSON only, in the form {"summary": string, "pros": [string], "cons": [string], "whyBuy": string}.`)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Product Name: %s\n", in.Name)
	fmt.Fprintf(&b, "Description: %s\n", in.Description)
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(in.Features, ", "))
	if in.Price != nil {
		fmt.Fprintf(&b, "Price: %s\n", in.Price.StringFixed(2))
	}
	return b.String()
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
