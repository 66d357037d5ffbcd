package queries_test

import (
	"context"
	"errors"
	"testing"

	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps catalog order", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("List", ctx).Return([]menu.Product{
			product(t, "soup", "6.00"),
			product(t, "bread", "1.50"),
		}, nil).Once()

		views, err := queries.NewGetMenuQueryHandler(repo).Handle(ctx, queries.NewGetMenuQuery())
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "soup", views[0].ID)
		assert.Equal(t, "Product soup", views[0].Name)
		assert.Equal(t, "6.00", views[0].Price.String())
		assert.Equal(t, "mains", views[0].Category)
		assert.Equal(t, "bread", views[1].ID)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		boom := errors.New("menu unavailable")
		repo := new(MockMenuRepository)
		repo.On("List", ctx).Return(nil, boom).Once()

		views, err := queries.NewGetMenuQueryHandler(repo).Handle(ctx, queries.NewGetMenuQuery())
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, views)
	})

	t.Run("unconstructed query", func(t *testing.T) {
		repo := new(MockMenuRepository)
		_, err := queries.NewGetMenuQueryHandler(repo).Handle(ctx, queries.GetMenuQuery{})
		assert.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
	})
}
