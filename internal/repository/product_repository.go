package repository

import (
	"context"
	"errors"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 部分更新。nilの項目は触らない。
type ProductPatch struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Stock       *int64
	Image       *string
	Description *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Stock == nil && p.Image == nil && p.Description == nil
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 追加順（id昇順）
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// 無いIDはErrNotFound
	Update(ctx context.Context, id int64, patch ProductPatch) error
	// 物理削除。無いIDでもエラーにしない。
	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
	CountStockBelow(ctx context.Context, threshold int64) (int64, error)
}
