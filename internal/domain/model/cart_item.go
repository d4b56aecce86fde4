package model

import "github.com/shopspring/decimal"

// カートの明細
// 追加時点の name/price/image を必ずコピーして持つ。
type CartItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int64           `json:"quantity"`
}

func (it CartItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(it.Quantity))
}
