package commands_test

import (
	"context"
	"testing"
	"time"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/menu"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*cart.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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
	return args.Get(0).([]menu.Product), args.Error(1)
}

func testProduct(t *testing.T, id, price string) menu.Product {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := menu.NewProduct(id, "Product "+id, m, "")
	require.NoError(t, err)
	return p
}

func testCart(t *testing.T, products ...menu.Product) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	for _, p := range products {
		c.AddProduct(p)
	}
	return c
}

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	table, err := kernel.NewTableNumber(7)
	require.NoError(t, err)
	l, err := order.NewLine("a", "Product a", kernel.ZeroMoney(), 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), table, []order.Line{l}, time.Now(), status, 2)
	require.NoError(t, err)
	return o
}
