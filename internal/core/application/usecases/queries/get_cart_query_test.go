package queries_test

import (
	"context"
	"testing"

	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGetCartQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id := kernel.NewUUID()
		q, err := queries.NewGetCartQuery(id)
		require.NoError(t, err)
		assert.NoError(t, q.Validate())
		assert.True(t, id.IsEqual(q.CartID()))
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := queries.NewGetCartQuery(kernel.UUID{})
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value query", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetCartQuery{}.Validate(), queries.ErrGetCartQueryIsNotConstructed)
	})
}

func TestGetCartQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns lines with derived totals", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		coffee := product(t, "coffee", "2.50")
		cake := product(t, "cake", "4.00")
		c.AddProduct(coffee)
		c.AddProduct(coffee)
		c.AddProduct(cake)

		carts := new(MockCartRepository)
		carts.On("Get", ctx, c.ID()).Return(c, nil).Once()

		q, err := queries.NewGetCartQuery(c.ID())
		require.NoError(t, err)

		view, err := queries.NewGetCartQueryHandler(carts).Handle(ctx, q)
		require.NoError(t, err)

		assert.True(t, c.ID().IsEqual(view.ID))
		require.Len(t, view.Lines, 2)
		assert.Equal(t, "coffee", view.Lines[0].ProductID)
		assert.Equal(t, 2, view.Lines[0].Quantity)
		assert.Equal(t, "5.00", view.Lines[0].Subtotal.String())
		assert.Equal(t, "9.00", view.Total.String())
		assert.Equal(t, 3, view.ItemCount)
		carts.AssertExpectations(t)
	})

	t.Run("empty cart", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		carts := new(MockCartRepository)
		carts.On("Get", ctx, c.ID()).Return(c, nil).Once()

		q, err := queries.NewGetCartQuery(c.ID())
		require.NoError(t, err)

		view, err := queries.NewGetCartQueryHandler(carts).Handle(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.True(t, view.Total.IsZero())
		assert.Zero(t, view.ItemCount)
	})

	t.Run("unknown cart", func(t *testing.T) {
		id := kernel.NewUUID()
		carts := new(MockCartRepository)
		carts.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("cart", id.String())).Once()

		q, err := queries.NewGetCartQuery(id)
		require.NoError(t, err)

		_, err = queries.NewGetCartQueryHandler(carts).Handle(ctx, q)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		carts := new(MockCartRepository)
		_, err := queries.NewGetCartQueryHandler(carts).Handle(ctx, queries.GetCartQuery{})
		assert.ErrorIs(t, err, queries.ErrGetCartQueryIsNotConstructed)
		carts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}
