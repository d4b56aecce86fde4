package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// 在庫がこれ未満なら「在庫わずか」
const LowStockThreshold int64 = 5

// 金額カラムは numeric(12,2)。小数2桁まで、MaxMoney 未満。
const MoneyScale int32 = 2

var MaxMoney = decimal.New(1, 10)

func init() {
	// 価格はJSONでは数値で返す
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Category    string          `gorm:"type:varchar(255);not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock       int64           `gorm:"not null" json:"stock"`
	Image       string          `gorm:"type:text" json:"image"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 保存しないフラグ。stockから毎回計算する。
func (p Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// low_stock を付けて返す
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		LowStock bool `json:"low_stock"`
	}{
		alias:    alias(p),
		LowStock: p.IsLowStock(),
	})
}
