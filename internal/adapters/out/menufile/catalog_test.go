package menufile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableorders/internal/adapters/out/menufile"
	"tableorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
products:
  - id: burger
    name: Classic Burger
    price: "10.00"
    category: mains
  - id: lemonade
    name: Lemonade
    price: "5"
    category: drinks
`

func TestParse(t *testing.T) {
	ctx := context.Background()

	catalog, err := menufile.Parse([]byte(sample))
	require.NoError(t, err)

	products, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "burger", products[0].ID())
	assert.Equal(t, "lemonade", products[1].ID())
	assert.Equal(t, "5.00", products[1].Price().String())

	p, err := catalog.Get(ctx, "burger")
	require.NoError(t, err)
	assert.Equal(t, "Classic Burger", p.Name())
	assert.Equal(t, "mains", p.Category())

	_, err = catalog.Get(ctx, "sushi")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{name: "empty document", yaml: "   ", want: menufile.ErrCatalogIsEmpty},
		{name: "no products", yaml: "products: []", want: menufile.ErrCatalogIsEmpty},
		{
			name: "negative price",
			yaml: "products:\n  - id: a\n    name: A\n    price: \"-1\"\n",
			want: errs.ErrValueIsInvalid,
		},
		{
			name: "price finer than a cent",
			yaml: "products:\n  - id: a\n    name: A\n    price: \"0.333\"\n",
			want: errs.ErrValueIsInvalid,
		},
		{
			name: "missing name",
			yaml: "products:\n  - id: a\n    price: \"1\"\n",
			want: errs.ErrValueIsRequired,
		},
		{
			name: "duplicate id",
			yaml: "products:\n  - id: a\n    name: A\n    price: \"1\"\n  - id: a\n    name: B\n    price: \"2\"\n",
			want: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := menufile.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("sub-cent price names the product", func(t *testing.T) {
		_, err := menufile.Parse([]byte("products:\n  - id: tea\n    name: Tea\n    price: \"2.505\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tea")
		assert.Contains(t, err.Error(), "2 decimal places")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := menufile.Parse([]byte("products: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode catalog")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	catalog, err := menufile.LoadFile(path)
	require.NoError(t, err)

	products, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = menufile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadReader(t *testing.T) {
	catalog, err := menufile.LoadReader(strings.NewReader(sample))
	require.NoError(t, err)

	p, err := catalog.Get(context.Background(), "lemonade")
	require.NoError(t, err)
	assert.Equal(t, "Lemonade", p.Name())
}

func TestShippedMenu(t *testing.T) {
	catalog, err := menufile.LoadFile(filepath.Join("..", "..", "..", "..", "configs", "menu.yaml"))
	require.NoError(t, err)

	products, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}
