package cart_test

import (
	"testing"

	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, id, price string) menu.Product {
	t.Helper()
	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := menu.NewProduct(id, "Product "+id, money, "")
	require.NoError(t, err)
	return p
}

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewCart(t *testing.T) {
	t.Run("should start empty", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.Validate())
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.Lines())
		assert.Equal(t, 0, c.ItemCount())
		assert.True(t, c.Total().IsZero())
	})

	t.Run("should reject nil id", func(t *testing.T) {
		_, err := cart.NewCart(kernel.UUID{})

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var c *cart.Cart

		assert.Equal(t, cart.ErrCartIsNotConstructed, c.Validate())
		assert.Equal(t, cart.ErrCartIsNotConstructed, (&cart.Cart{}).Validate())
	})
}

func TestCart_AddProduct(t *testing.T) {
	t.Run("should merge repeated adds into one line", func(t *testing.T) {
		c := newCart(t)
		p := newProduct(t, "a", "10")

		for range 4 {
			c.AddProduct(p)
		}

		require.Len(t, c.Lines(), 1)
		line, ok := c.Line("a")
		require.True(t, ok)
		assert.Equal(t, 4, line.Quantity())
	})

	t.Run("should keep insertion order", func(t *testing.T) {
		c := newCart(t)
		c.AddProduct(newProduct(t, "b", "5"))
		c.AddProduct(newProduct(t, "a", "10"))
		c.AddProduct(newProduct(t, "b", "5"))

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "b", lines[0].ProductID())
		assert.Equal(t, "a", lines[1].ProductID())
	})

	t.Run("should snapshot name and price at first selection", func(t *testing.T) {
		c := newCart(t)
		c.AddProduct(newProduct(t, "a", "10"))
		c.AddProduct(newProduct(t, "a", "12"))

		line, _ := c.Line("a")
		assert.Equal(t, "Product a", line.Name())
		assert.True(t, line.UnitPrice().IsEqual(money(t, "10")))
		assert.True(t, c.Total().IsEqual(money(t, "20")))
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("should set any positive quantity", func(t *testing.T) {
		c := newCart(t)
		c.AddProduct(newProduct(t, "a", "1.5"))

		c.SetQuantity("a", 1000)

		line, _ := c.Line("a")
		assert.Equal(t, 1000, line.Quantity())
		assert.True(t, c.Total().IsEqual(money(t, "1500")))
	})

	t.Run("should remove the line for zero and negative quantities", func(t *testing.T) {
		for _, q := range []int{0, -5} {
			c := newCart(t)
			c.AddProduct(newProduct(t, "a", "10"))
			c.AddProduct(newProduct(t, "b", "5"))

			c.SetQuantity("a", q)

			_, ok := c.Line("a")
			assert.False(t, ok, "quantity %d", q)
			assert.Len(t, c.Lines(), 1)
		}
	})

	t.Run("should ignore absent products", func(t *testing.T) {
		c := newCart(t)
		c.AddProduct(newProduct(t, "a", "10"))

		c.SetQuantity("missing", 3)

		assert.Len(t, c.Lines(), 1)
		assert.Equal(t, 1, c.ItemCount())
	})
}

func TestCart_RemoveProduct(t *testing.T) {
	c := newCart(t)
	c.AddProduct(newProduct(t, "a", "10"))
	c.AddProduct(newProduct(t, "b", "5"))
	c.AddProduct(newProduct(t, "c", "1"))

	c.RemoveProduct("b")
	c.RemoveProduct("missing")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ProductID())
	assert.Equal(t, "c", lines[1].ProductID())
}

func TestCart_Total(t *testing.T) {
	t.Run("should equal the sum of subtotals after mixed operations", func(t *testing.T) {
		c := newCart(t)
		a := newProduct(t, "a", "10")
		b := newProduct(t, "b", "5")
		d := newProduct(t, "d", "2.25")

		c.AddProduct(a)
		c.AddProduct(b)
		c.AddProduct(d)
		c.AddProduct(a)
		c.SetQuantity("d", 4)
		c.RemoveProduct("b")
		c.AddProduct(b)

		expected := kernel.ZeroMoney()
		for _, l := range c.Lines() {
			expected = expected.Add(l.UnitPrice().Mul(l.Quantity()))
		}
		assert.True(t, c.Total().IsEqual(expected))
		assert.True(t, c.Total().IsEqual(money(t, "34")))
		assert.Equal(t, 7, c.ItemCount())
	})

	t.Run("should compute the reference scenario", func(t *testing.T) {
		c := newCart(t)
		a := newProduct(t, "a", "10")
		c.AddProduct(a)
		c.AddProduct(a)
		c.AddProduct(newProduct(t, "b", "5"))

		assert.True(t, c.Total().IsEqual(money(t, "25")))
	})
}

func TestCart_Clear(t *testing.T) {
	c := newCart(t)
	c.AddProduct(newProduct(t, "a", "10"))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestCart_Clone(t *testing.T) {
	c := newCart(t)
	c.AddProduct(newProduct(t, "a", "10"))

	clone := c.Clone()
	clone.AddProduct(newProduct(t, "a", "10"))
	clone.AddProduct(newProduct(t, "b", "5"))

	line, _ := c.Line("a")
	assert.Equal(t, 1, line.Quantity())
	assert.Len(t, c.Lines(), 1)
	assert.True(t, clone.ID().IsEqual(c.ID()))
	require.NoError(t, clone.Validate())
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := newCart(t)
	c.AddProduct(newProduct(t, "a", "10"))

	lines := c.Lines()
	lines[0] = cart.Line{}

	line, ok := c.Line("a")
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity())
}

func TestCart_Consume(t *testing.T) {
	t.Run("should remove lines whose whole quantity is consumed", func(t *testing.T) {
		c := newCart(t)
		a := newProduct(t, "a", "10")
		c.AddProduct(a)
		c.AddProduct(a)
		c.AddProduct(newProduct(t, "b", "5"))

		c.Consume("a", 2)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "b", lines[0].ProductID())
	})

	t.Run("should keep units added after the snapshot", func(t *testing.T) {
		c := newCart(t)
		a := newProduct(t, "a", "10")
		c.AddProduct(a)
		c.SetQuantity("a", 5)

		c.Consume("a", 2)

		line, ok := c.Line("a")
		require.True(t, ok)
		assert.Equal(t, 3, line.Quantity())
		assert.True(t, c.Total().IsEqual(money(t, "30")))
	})

	t.Run("should ignore absent products and non-positive quantities", func(t *testing.T) {
		c := newCart(t)
		c.AddProduct(newProduct(t, "a", "10"))

		c.Consume("missing", 1)
		c.Consume("a", 0)

		assert.Equal(t, 1, c.ItemCount())
	})
}

func TestCart_WithVersion(t *testing.T) {
	c := newCart(t)
	c.AddProduct(newProduct(t, "a", "10"))

	next := c.WithVersion(4)
	next.AddProduct(newProduct(t, "b", "5"))

	assert.Zero(t, c.Version())
	assert.Equal(t, 4, next.Version())
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 4, next.Clone().Version())
}
