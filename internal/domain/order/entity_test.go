//go:build unit

package order_test

import (
	"testing"

	"resort-booking/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = map[int64]order.Product{
	1: {ID: 1, Name: "Pool towel", PriceCents: 1500},
	2: {ID: 2, Name: "Sunscreen", PriceCents: 900},
	3: {ID: 3, Name: "Water bottle", PriceCents: 600},
}

func TestCart(t *testing.T) {
	c := order.Cart{}

	require.NoError(t, c.Add(1, 2))
	require.NoError(t, c.Add(1, 1))
	require.NoError(t, c.Add(2, 1))
	assert.Equal(t, 3, c[1])

	assert.ErrorIs(t, c.Add(3, 0), order.ErrInvalidQuantity)
	assert.ErrorIs(t, c.Add(3, -1), order.ErrInvalidQuantity)

	c.Remove(2)
	assert.NotContains(t, c, int64(2))
	assert.False(t, c.IsEmpty())
}

func TestCheckout(t *testing.T) {
	userID := uuid.New()

	t.Run("snapshots prices and totals", func(t *testing.T) {
		cart := order.Cart{3: 4, 1: 2}
		o, err := order.Checkout(userID, cart, catalog)
		require.NoError(t, err)

		lines := o.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, order.Line{ProductID: 1, Quantity: 2, UnitPriceCents: 1500}, lines[0])
		assert.Equal(t, order.Line{ProductID: 3, Quantity: 4, UnitPriceCents: 600}, lines[1])
		assert.Equal(t, int64(2*1500+4*600), o.TotalCents())
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := order.Checkout(userID, order.Cart{}, catalog)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		_, err := order.Checkout(userID, order.Cart{99: 1}, catalog)
		assert.ErrorIs(t, err, order.ErrUnknownProduct)
	})
}
