package repository

import (
	"context"
	"errors"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

var _ repo.OrderRepository = (*OrderGormRepository)(nil)

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 新しい順（同時刻ならid降順）
func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	order.ID = 0
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	// totalはDBの値で返す
	return r.FindByID(ctx, order.ID)
}

// statusだけ上書きする（totalは触らない）
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 物理削除。0件でもOK。
func (r *OrderGormRepository) Delete(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, orderID).Error
}

func (r *OrderGormRepository) Stats(ctx context.Context) (int64, decimal.Decimal, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error; err != nil {
		return 0, decimal.Zero, err
	}

	var revenue decimal.NullDecimal
	row := r.db.WithContext(ctx).Model(&model.Order{}).Select("SUM(total)").Row()
	if err := row.Scan(&revenue); err != nil {
		return 0, decimal.Zero, err
	}
	if !revenue.Valid {
		return count, decimal.Zero, nil
	}
	return count, revenue.Decimal, nil
}
