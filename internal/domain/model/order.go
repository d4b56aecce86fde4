package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// 3値以外はfalse。遷移の順序は問わない。
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// Totalは作成時に一度だけ計算する（商品を後で編集しても変わらない）
type Order struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Customer  string          `gorm:"type:varchar(255);not null" json:"customer"`
	Email     string          `gorm:"type:varchar(255)" json:"email"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// order_items から詰める
	Items []OrderItem `gorm:"-" json:"items"`
}
