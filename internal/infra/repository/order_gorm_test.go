package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	"github.com/anuragpande549/AI-Commerce/internal/infra/db/dbtest"
	infraRepo "github.com/anuragpande549/AI-Commerce/internal/infra/repository"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderGorm_CreateListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewOrderGormRepository(dbtest.Open(t))

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	first, err := r.Create(ctx, model.Order{Customer: "Ana", Total: decimal.NewFromInt(40), Status: model.OrderStatusProcessing, CreatedAt: base})
	require.NoError(t, err)
	second, err := r.Create(ctx, model.Order{Customer: "Ben", Total: decimal.NewFromInt(5), Status: model.OrderStatusProcessing, CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestOrderGorm_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewOrderGormRepository(dbtest.Open(t))

	o, err := r.Create(ctx, model.Order{Customer: "Ana", Total: decimal.NewFromInt(40), Status: model.OrderStatusProcessing, CreatedAt: time.Now()})
	require.NoError(t, err)

	require.NoError(t, r.UpdateStatus(ctx, o.ID, model.OrderStatusDelivered))

	got, err := r.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, got.Status)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(40)))

	err = r.UpdateStatus(ctx, 9999, model.OrderStatusShipped)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderGorm_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewOrderGormRepository(dbtest.Open(t))

	o, err := r.Create(ctx, model.Order{Customer: "Ana", Total: decimal.NewFromInt(1), Status: model.OrderStatusProcessing, CreatedAt: time.Now()})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, o.ID))
	require.NoError(t, r.Delete(ctx, o.ID))

	_, err = r.FindByID(ctx, o.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderGorm_Stats(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewOrderGormRepository(dbtest.Open(t))

	n, revenue, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.True(t, revenue.IsZero())

	for _, total := range []string{"40", "12.5"} {
		_, err := r.Create(ctx, model.Order{Customer: "x", Total: decimal.RequireFromString(total), Status: model.OrderStatusProcessing, CreatedAt: time.Now()})
		require.NoError(t, err)
	}

	n, revenue, err = r.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.True(t, revenue.Equal(decimal.RequireFromString("52.5")), "revenue=%s", revenue)
}

func TestOrderItemGorm_BulkAndList(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	items := infraRepo.NewOrderItemGormRepository(gdb)

	err := items.CreateBulk(ctx, 1, []model.OrderItem{
		{ProductID: 10, ProductNameSnapshot: "Lamp", UnitPriceSnapshot: decimal.NewFromInt(20), Quantity: 2},
		{ProductID: 11, ProductNameSnapshot: "Pen", UnitPriceSnapshot: decimal.NewFromInt(1), Quantity: 1},
	})
	require.NoError(t, err)
	require.NoError(t, items.CreateBulk(ctx, 2, []model.OrderItem{
		{ProductID: 10, ProductNameSnapshot: "Lamp", UnitPriceSnapshot: decimal.NewFromInt(20), Quantity: 1},
	}))
	require.NoError(t, items.CreateBulk(ctx, 3, nil))

	one, err := items.ListByOrderID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 2)
	assert.Equal(t, "Lamp", one[0].ProductNameSnapshot)
	assert.Equal(t, int64(1), one[0].OrderID)

	grouped, err := items.ListByOrderIDs(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)
	assert.Len(t, grouped[3], 0)

	require.NoError(t, items.DeleteByOrderID(ctx, 1))
	one, err = items.ListByOrderID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, one)
}

func TestTxManagerGorm_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	tm := infraRepo.NewTxManagerGorm(gdb)

	boom := errors.New("boom")
	err := tm.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().Create(ctx, model.Order{Customer: "Ana", Total: decimal.NewFromInt(1), Status: model.OrderStatusProcessing, CreatedAt: time.Now()})
		if err != nil {
			return err
		}
		if err := r.OrderItems().CreateBulk(ctx, o.ID, []model.OrderItem{{ProductID: 1, ProductNameSnapshot: "x", UnitPriceSnapshot: decimal.NewFromInt(1), Quantity: 1}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	orders, err := infraRepo.NewOrderGormRepository(gdb).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
