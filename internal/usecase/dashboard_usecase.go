package usecase

import (
	"context"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
)

// 管理画面トップの数字
type DashboardUsecase struct {
	productRepo repo.ProductRepository
	orders      repo.OrderRepository
}

func NewDashboardUsecase(productRepo repo.ProductRepository, orders repo.OrderRepository) *DashboardUsecase {
	return &DashboardUsecase{productRepo: productRepo, orders: orders}
}

func (u *DashboardUsecase) Get(ctx context.Context) (model.Dashboard, error) {
	orderCount, revenue, err := u.orders.Stats(ctx)
	if err != nil {
		return model.Dashboard{}, NewStoreError(err)
	}
	productCount, err := u.productRepo.Count(ctx)
	if err != nil {
		return model.Dashboard{}, NewStoreError(err)
	}
	lowStock, err := u.productRepo.CountStockBelow(ctx, model.LowStockThreshold)
	if err != nil {
		return model.Dashboard{}, NewStoreError(err)
	}

	return model.Dashboard{
		Revenue:  revenue,
		Orders:   orderCount,
		Products: productCount,
		LowStock: lowStock,
	}, nil
}
