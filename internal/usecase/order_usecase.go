package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
	"github.com/anuragpande549/AI-Commerce/internal/validator"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	items  repo.OrderItemRepository
	now    func() time.Time
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, items repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, items: items, now: time.Now}
}

// 確定済みのカート内容。金額はここで一度だけ計算する。
type CreateOrderInput struct {
	Customer string
	Email    string
	Items    []model.CartItem
}

func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	if err := validator.CartLines(in.Items); err != nil {
		return model.Order{}, NewValidationError(err)
	}
	if err := validator.Customer(in.Customer); err != nil {
		return model.Order{}, NewValidationError(err)
	}
	if err := validator.Email(in.Email); err != nil {
		return model.Order{}, NewValidationError(err)
	}

	total := decimal.Zero
	lines := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		total = total.Add(it.Subtotal())
		lines = append(lines, model.OrderItem{
			ProductID:           it.ProductID,
			ProductNameSnapshot: it.Name,
			UnitPriceSnapshot:   it.Price,
			ImageSnapshot:       it.Image,
			Quantity:            it.Quantity,
		})
	}
	if err := validator.Total(total); err != nil {
		return model.Order{}, NewValidationError(err)
	}

	now := u.now()
	order := model.Order{
		Customer:  strings.TrimSpace(in.Customer),
		Email:     strings.TrimSpace(in.Email),
		Total:     total,
		Status:    model.OrderStatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	//注文と明細は同じトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Orders().Create(ctx, order)
		if err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = created.ID
			lines[i].CreatedAt = now
		}
		if err := r.OrderItems().CreateBulk(ctx, created.ID, lines); err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return model.Order{}, NewStoreError(err)
	}

	order.Items = lines
	return order, nil
}

// 3値ならどの状態からでも上書きする
func (u *OrderUsecase) UpdateStatus(ctx context.Context, id int64, status string) (model.Order, error) {
	st, err := validator.OrderStatus(status)
	if err != nil {
		return model.Order{}, NewValidationError(err)
	}

	err = u.orders.UpdateStatus(ctx, id, st)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewNotFoundError("order not found")
	}
	if err != nil {
		return model.Order{}, NewStoreError(err)
	}

	return u.Get(ctx, id)
}

// 無いIDでも成功
func (u *OrderUsecase) Delete(ctx context.Context, id int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.OrderItems().DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		return r.Orders().Delete(ctx, id)
	})
	if err != nil {
		return NewStoreError(err)
	}
	return nil
}

// 新しい順
func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return []model.Order{}, NewStoreError(err)
	}
	if len(orders) == 0 {
		return []model.Order{}, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	grouped, err := u.items.ListByOrderIDs(ctx, ids)
	if err != nil {
		return []model.Order{}, NewStoreError(err)
	}

	for i := range orders {
		items := grouped[orders[i].ID]
		if items == nil {
			items = []model.OrderItem{}
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewNotFoundError("order not found")
	}
	if err != nil {
		return model.Order{}, NewStoreError(err)
	}

	items, err := u.items.ListByOrderID(ctx, id)
	if err != nil {
		return model.Order{}, NewStoreError(err)
	}
	if items == nil {
		items = []model.OrderItem{}
	}
	o.Items = items
	return o, nil
}
