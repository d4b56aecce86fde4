package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
	"github.com/anuragpande549/AI-Commerce/internal/validator"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 作成・更新の入力。nilは「指定なし」。
// 数値は handler でJSONから数値型にしてから渡す。
type ProductInput struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Stock       *int64
	Image       *string
	Description *string
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewStoreError(err)
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewNotFoundError("product not found")
	}
	if err != nil {
		return model.Product{}, NewStoreError(err)
	}
	return p, nil
}

// name/category/price/stock は必須
func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if in.Name == nil {
		return model.Product{}, NewValidationError(validator.ErrNameRequired)
	}
	if in.Category == nil {
		return model.Product{}, NewValidationError(validator.ErrCategoryRequired)
	}
	if in.Price == nil {
		return model.Product{}, NewValidationError(validator.ErrPriceRequired)
	}
	if in.Stock == nil {
		return model.Product{}, NewValidationError(validator.ErrStockRequired)
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Name:     strings.TrimSpace(*in.Name),
		Category: strings.TrimSpace(*in.Category),
		Price:    *in.Price,
		Stock:    *in.Stock,
	}
	if in.Image != nil {
		p.Image = strings.TrimSpace(*in.Image)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewStoreError(err)
	}
	return created, nil
}

// 指定された項目だけ置き換えて、保存後の商品を返す（後勝ち）
func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	patch := repo.ProductPatch{
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		patch.Name = &name
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		patch.Category = &category
	}
	if in.Image != nil {
		image := strings.TrimSpace(*in.Image)
		patch.Image = &image
	}

	err := u.productRepo.Update(ctx, id, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewNotFoundError("product not found")
	}
	if err != nil {
		return model.Product{}, NewStoreError(err)
	}

	return u.Get(ctx, id)
}

// 無いIDでも成功扱い
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return NewStoreError(err)
	}
	return nil
}

// 指定されている項目だけチェック
func validateProductInput(in ProductInput) error {
	if in.Name != nil {
		if err := validator.Name(*in.Name); err != nil {
			return NewValidationError(err)
		}
	}
	if in.Category != nil {
		if err := validator.Category(*in.Category); err != nil {
			return NewValidationError(err)
		}
	}
	if in.Price != nil {
		if err := validator.Price(*in.Price); err != nil {
			return NewValidationError(err)
		}
	}
	if in.Stock != nil {
		if err := validator.Stock(*in.Stock); err != nil {
			return NewValidationError(err)
		}
	}
	return nil
}
