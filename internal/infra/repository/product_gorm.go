package repository

import (
	"context"
	"errors"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

var _ repo.ProductRepository = (*ProductGormRepository)(nil)

// 全商品を追加順で返す
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// カテゴリ名の完全一致（大文字小文字も区別、trimしない）
func (r *ProductGormRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成。DBに入った値（丸め後）を読み直して返す。
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return r.FindByID(ctx, p.ID)
}

// 指定された項目だけ更新（後勝ち）
func (r *ProductGormRepository) Update(ctx context.Context, id int64, patch repo.ProductPatch) error {
	// 何も無ければ存在確認だけ
	if patch.IsEmpty() {
		_, err := r.FindByID(ctx, id)
		return err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Stock != nil {
		updates["stock"] = *patch.Stock
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（物理削除）。0件でもOK。
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ProductGormRepository) CountStockBelow(ctx context.Context, threshold int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("stock < ?", threshold).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
