//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"resort-booking/internal/domain/order"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	catalog map[int64]order.Product
}

func (f *fakeProductRepo) FindAll(_ context.Context, _ db.DBTX) ([]order.Product, error) {
	out := make([]order.Product, 0, len(f.catalog))
	for _, p := range f.catalog {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, _ db.DBTX, ids []int64) (map[int64]order.Product, error) {
	out := make(map[int64]order.Product)
	for _, id := range ids {
		if p, ok := f.catalog[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type memCartStore struct {
	carts map[uuid.UUID]order.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[uuid.UUID]order.Cart)}
}

func (m *memCartStore) Get(_ context.Context, userID uuid.UUID) (order.Cart, error) {
	c, ok := m.carts[userID]
	if !ok {
		return order.Cart{}, nil
	}
	return c, nil
}

func (m *memCartStore) Save(_ context.Context, userID uuid.UUID, c order.Cart) error {
	m.carts[userID] = c
	return nil
}

func (m *memCartStore) Delete(_ context.Context, userID uuid.UUID) error {
	delete(m.carts, userID)
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Publish(_ context.Context, _ string, _ any) {}

func newCartForTest() (usecase.OrderUseCase, *memCartStore) {
	products := &fakeProductRepo{catalog: map[int64]order.Product{
		1: {ID: 1, Name: "Pool towel", PriceCents: 1500},
		2: {ID: 2, Name: "Sunscreen", PriceCents: 900},
	}}
	carts := newMemCartStore()
	return usecase.NewOrderUseCase(nil, products, nil, carts, noopNotifier{}), carts
}

func TestCart_AddAndView(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	uc, _ := newCartForTest()

	require.NoError(t, uc.AddToCart(ctx, userID, 1, 2))
	require.NoError(t, uc.AddToCart(ctx, userID, 2, 1))
	require.NoError(t, uc.AddToCart(ctx, userID, 1, 1))

	view, err := uc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, int64(3*1500+900), view.TotalCents)
}

func TestCart_AddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	uc, carts := newCartForTest()
	userID := uuid.New()

	err := uc.AddToCart(ctx, userID, 99, 1)
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	assert.Empty(t, carts.carts)
}

func TestCart_RemoveLastItemDeletesCart(t *testing.T) {
	ctx := context.Background()
	uc, carts := newCartForTest()
	userID := uuid.New()

	require.NoError(t, uc.AddToCart(ctx, userID, 1, 2))
	require.NoError(t, uc.RemoveFromCart(ctx, userID, 1))

	_, ok := carts.carts[userID]
	assert.False(t, ok)
}

func TestCart_EmptyView(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartForTest()

	view, err := uc.GetCart(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.TotalCents)
}
