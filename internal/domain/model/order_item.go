package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文時点のカート明細のコピー
type OrderItem struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID             int64           `gorm:"not null;index" json:"order_id"`
	ProductID           int64           `gorm:"not null;index" json:"product_id"`
	ProductNameSnapshot string          `gorm:"type:varchar(255);not null" json:"name"`
	UnitPriceSnapshot   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	ImageSnapshot       string          `gorm:"type:text" json:"image"`
	Quantity            int64           `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime" json:"-"`
}

func (it OrderItem) Subtotal() decimal.Decimal {
	return it.UnitPriceSnapshot.Mul(decimal.NewFromInt(it.Quantity))
}
