package usecase

import (
	"context"
	"sort"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
)

// カテゴリは保存しない。毎回商品一覧から作る。
type CategoryUsecase struct {
	productRepo repo.ProductRepository
}

func NewCategoryUsecase(productRepo repo.ProductRepository) *CategoryUsecase {
	return &CategoryUsecase{productRepo: productRepo}
}

// 名前順。サムネイルはそのカテゴリで最初に登録された商品の画像。
func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Category{}, NewStoreError(err)
	}
	return groupCategories(products), nil
}

// 完全一致（大文字小文字も区別、trimしない）。無ければ空配列。
func (u *CategoryUsecase) ProductsByCategory(ctx context.Context, name string) ([]model.Product, error) {
	items, err := u.productRepo.ListByCategory(ctx, name)
	if err != nil {
		return []model.Product{}, NewStoreError(err)
	}
	if items == nil {
		items = []model.Product{}
	}
	return items, nil
}

// productsはid昇順の前提
func groupCategories(products []model.Product) []model.Category {
	index := map[string]int{}
	out := []model.Category{}

	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			index[p.Category] = len(out)
			out = append(out, model.Category{Name: p.Category, Image: p.Image, Count: 1})
			continue
		}
		out[i].Count++
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}
