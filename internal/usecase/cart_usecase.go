package usecase

import (
	"context"
	"errors"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
	"github.com/anuragpande549/AI-Commerce/internal/validator"

	"github.com/shopspring/decimal"
)

// 注文作成だけ使う
type OrderCreator interface {
	Create(ctx context.Context, in CreateOrderInput) (model.Order, error)
}

type CartUsecase struct {
	store       repo.CartStore
	productRepo repo.ProductRepository
	orders      OrderCreator
}

func NewCartUsecase(store repo.CartStore, productRepo repo.ProductRepository, orders OrderCreator) *CartUsecase {
	return &CartUsecase{store: store, productRepo: productRepo, orders: orders}
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64 // 0なら1として扱う
}

type CheckoutInput struct {
	Customer string
	Email    string
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int64            `json:"count"` // 数量の合計
	Open  bool             `json:"open"`
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) CartResponse {
	return toCartResponse(u.store.Snapshot(sessionID))
}

// 商品の名前・価格・画像はこの時点の値をコピーする
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if err := validator.Quantity(qty); err != nil {
		return CartResponse{}, NewValidationError(err)
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewNotFoundError("product not found")
	}
	if err != nil {
		return CartResponse{}, NewStoreError(err)
	}

	snap, err := u.store.Update(sessionID, func(c *model.Cart) error {
		return c.AddItem(p, qty)
	})
	if err != nil {
		return CartResponse{}, NewValidationError(err)
	}
	return toCartResponse(snap), nil
}

// 行ごと消す。無ければ何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, productID int64) CartResponse {
	snap, _ := u.store.Update(sessionID, func(c *model.Cart) error {
		c.RemoveItem(productID)
		return nil
	})
	return toCartResponse(snap)
}

func (u *CartUsecase) Clear(ctx context.Context, sessionID string) CartResponse {
	snap, _ := u.store.Update(sessionID, func(c *model.Cart) error {
		c.Clear()
		return nil
	})
	return toCartResponse(snap)
}

// 表示状態だけ変える（中身は触らない）
func (u *CartUsecase) SetOpen(ctx context.Context, sessionID string, open bool) CartResponse {
	snap, _ := u.store.Update(sessionID, func(c *model.Cart) error {
		c.SetOpen(open)
		return nil
	})
	return toCartResponse(snap)
}

// 注文に成功したときだけカートを空にする
func (u *CartUsecase) Checkout(ctx context.Context, sessionID string, in CheckoutInput) (model.Order, error) {
	snap := u.store.Snapshot(sessionID)
	if snap.IsEmpty() {
		return model.Order{}, NewValidationError(validator.ErrEmptyCart)
	}

	order, err := u.orders.Create(ctx, CreateOrderInput{
		Customer: in.Customer,
		Email:    in.Email,
		Items:    snap.Items,
	})
	if err != nil {
		return model.Order{}, err
	}

	_, _ = u.store.Update(sessionID, func(c *model.Cart) error {
		c.Clear()
		c.SetOpen(false)
		return nil
	})
	return order, nil
}

func toCartResponse(s model.CartSnapshot) CartResponse {
	items := s.Items
	if items == nil {
		items = []model.CartItem{}
	}
	var count int64
	for _, it := range items {
		count += it.Quantity
	}
	return CartResponse{Items: items, Total: s.Total(), Count: count, Open: s.Open}
}
