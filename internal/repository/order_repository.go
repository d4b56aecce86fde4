package repository

import (
	"context"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 新しい順
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	Delete(ctx context.Context, orderID int64) error

	// 件数と売上合計
	Stats(ctx context.Context) (count int64, revenue decimal.Decimal, err error)
}
