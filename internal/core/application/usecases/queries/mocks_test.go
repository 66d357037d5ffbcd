package queries_test

import (
	"context"
	"testing"
	"time"

	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/menu"
	"tableorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReader) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*cart.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Get(ctx context.Context, productID string) (menu.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(menu.Product), args.Error(1)
}

func (m *MockMenuRepository) List(ctx context.Context) ([]menu.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]menu.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func product(t *testing.T, id, price string) menu.Product {
	t.Helper()
	p, err := menu.NewProduct(id, "Product "+id, money(t, price), "mains")
	require.NoError(t, err)
	return p
}

func restoredOrder(t *testing.T, table int, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()
	tn, err := kernel.NewTableNumber(table)
	require.NoError(t, err)
	l, err := order.NewLine("p1", "Product p1", money(t, "4.50"), 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), tn, []order.Line{l}, createdAt, status, 0)
	require.NoError(t, err)
	return o
}
