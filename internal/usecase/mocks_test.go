package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
	"github.com/anuragpande549/AI-Commerce/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, id int64, patch repo.ProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) CountStockBelow(ctx context.Context, threshold int64) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) Stats(ctx context.Context) (int64, decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(decimal.Decimal), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	args := m.Called(ctx, orderIDs)
	items, _ := args.Get(0).(map[int64][]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// =====================
// TxManager mock
// =====================

// WithinTx の中で渡す repos を固定する
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }

// =====================
// Adapter mocks
// =====================

type TextGeneratorMock struct{ mock.Mock }

func (m *TextGeneratorMock) GenerateText(ctx context.Context, prompt string) ([]string, error) {
	args := m.Called(ctx, prompt)
	texts, _ := args.Get(0).([]string)
	return texts, args.Error(1)
}

type UploaderMock struct{ mock.Mock }

func (m *UploaderMock) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, body)
	return args.String(0), args.Error(1)
}

type OrderCreatorMock struct{ mock.Mock }

func (m *OrderCreatorMock) Create(ctx context.Context, in usecase.CreateOrderInput) (model.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

// =====================
// helpers
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), want), "err=%v want contains=%q", err, want)
	}
}

func assertKind(t *testing.T, err error, kind usecase.ErrorKind) {
	t.Helper()
	e, ok := usecase.AsError(err)
	if assert.True(t, ok, "err=%v is not usecase.Error", err) {
		assert.Equal(t, kind, e.Kind)
	}
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
