package model

import "github.com/shopspring/decimal"

// 商品要約（AI）の返却形。4項目とも必須。
type ProductSummary struct {
	Summary string   `json:"summary"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
	WhyBuy  string   `json:"whyBuy"`
}

// 管理画面の集計
type Dashboard struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Orders   int64           `json:"orders"`
	Products int64           `json:"products"`
	LowStock int64           `json:"low_stock"`
}
