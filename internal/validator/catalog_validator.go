package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"

	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired     = errors.New("name required")
	ErrCategoryRequired = errors.New("category required")
	ErrPriceRequired    = errors.New("price required")
	ErrNegativePrice    = errors.New("price must be >= 0")
	ErrPricePrecision   = errors.New("price must have at most 2 decimal places")
	ErrPriceTooLarge    = errors.New("price too large")
	ErrStockRequired    = errors.New("stock required")
	ErrNegativeStock    = errors.New("stock must be >= 0")

	ErrCustomerRequired = errors.New("customer name required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyCart        = errors.New("cart empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrQuantityTooLarge = errors.New("quantity too large")
	ErrTotalTooLarge    = errors.New("total too large")
	ErrInvalidLine      = errors.New("invalid item")

	ErrPromptRequired = errors.New("prompt required")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 空白だけもNG
func Name(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrNameRequired
	}
	return nil
}

func Category(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrCategoryRequired
	}
	return nil
}

// 保存時に丸めや桁あふれが起きない値だけ通す
func Price(p decimal.Decimal) error {
	if p.IsNegative() {
		return ErrNegativePrice
	}
	if !p.Equal(p.Round(model.MoneyScale)) {
		return ErrPricePrecision
	}
	if p.GreaterThanOrEqual(model.MaxMoney) {
		return ErrPriceTooLarge
	}
	return nil
}

func Total(t decimal.Decimal) error {
	if t.GreaterThanOrEqual(model.MaxMoney) {
		return ErrTotalTooLarge
	}
	return nil
}

func Stock(n int64) error {
	if n < 0 {
		return ErrNegativeStock
	}
	return nil
}

func Customer(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerRequired
	}
	return nil
}

// 任意項目。入っているときだけ形式をみる。
func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !emailRe.MatchString(s) {
		return ErrInvalidEmail
	}
	return nil
}

// 大文字小文字も含めて3値のどれかと完全一致
func OrderStatus(s string) (model.OrderStatus, error) {
	st := model.OrderStatus(strings.TrimSpace(s))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func Quantity(q int64) error {
	if q < 1 {
		return ErrInvalidQuantity
	}
	if q > model.MaxQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

// 注文に入れる明細（カートのスナップショット）
func CartLines(items []model.CartItem) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	for _, it := range items {
		if err := Quantity(it.Quantity); err != nil {
			return err
		}
		if strings.TrimSpace(it.Name) == "" {
			return ErrInvalidLine
		}
		if err := Price(it.Price); err != nil {
			return err
		}
	}
	return nil
}

func Prompt(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrPromptRequired
	}
	return nil
}
