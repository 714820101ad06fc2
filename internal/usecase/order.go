package usecase

import (
	"context"
	"errors"
	"time"

	"resort-booking/internal/domain/order"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/queue"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	FindAll(ctx context.Context, dbtx db.DBTX) ([]order.Product, error)
	FindByIDs(ctx context.Context, dbtx db.DBTX, ids []int64) (map[int64]order.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (int64, time.Time, error)
	FindByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*order.Order, error)
}

// CartStore is the per-user session cart, kept outside the database.
type CartStore interface {
	Get(ctx context.Context, userID uuid.UUID) (order.Cart, error)
	Save(ctx context.Context, userID uuid.UUID, c order.Cart) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// CartView is a cart joined with current product data for display.
type CartView struct {
	Lines      []CartLine
	TotalCents int64
}

type CartLine struct {
	Product  order.Product
	Quantity int
}

type OrderUseCase interface {
	ListProducts(ctx context.Context) ([]order.Product, error)
	GetCart(ctx context.Context, userID uuid.UUID) (CartView, error)
	AddToCart(ctx context.Context, userID uuid.UUID, productID int64, qty int) error
	RemoveFromCart(ctx context.Context, userID uuid.UUID, productID int64) error
	Checkout(ctx context.Context, userID uuid.UUID) (*order.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*order.Order, error)
}

type orderUseCaseImpl struct {
	pool        *pgxpool.Pool
	productRepo ProductRepository
	orderRepo   OrderRepository
	carts       CartStore
	notifier    Notifier
}

func NewOrderUseCase(pool *pgxpool.Pool, productRepo ProductRepository, orderRepo OrderRepository, carts CartStore, notifier Notifier) OrderUseCase {
	return &orderUseCaseImpl{
		pool:        pool,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		carts:       carts,
		notifier:    notifier,
	}
}

func (u *orderUseCaseImpl) ListProducts(ctx context.Context) ([]order.Product, error) {
	return u.productRepo.FindAll(ctx, u.pool)
}

func (u *orderUseCaseImpl) GetCart(ctx context.Context, userID uuid.UUID) (CartView, error) {
	c, err := u.carts.Get(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	if c.IsEmpty() {
		return CartView{}, nil
	}

	ids := make([]int64, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	products, err := u.productRepo.FindByIDs(ctx, u.pool, ids)
	if err != nil {
		return CartView{}, err
	}

	var view CartView
	for id, qty := range c {
		p, ok := products[id]
		if !ok {
			// Product removed from the catalog since it was carted.
			continue
		}
		view.Lines = append(view.Lines, CartLine{Product: p, Quantity: qty})
		view.TotalCents += int64(qty) * p.PriceCents
	}
	return view, nil
}

func (u *orderUseCaseImpl) AddToCart(ctx context.Context, userID uuid.UUID, productID int64, qty int) error {
	products, err := u.productRepo.FindByIDs(ctx, u.pool, []int64{productID})
	if err != nil {
		return err
	}
	if _, ok := products[productID]; !ok {
		return ErrProductNotFound
	}

	c, err := u.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	if err := c.Add(productID, qty); err != nil {
		return err
	}
	return u.carts.Save(ctx, userID, c)
}

func (u *orderUseCaseImpl) RemoveFromCart(ctx context.Context, userID uuid.UUID, productID int64) error {
	c, err := u.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	c.Remove(productID)
	if c.IsEmpty() {
		return u.carts.Delete(ctx, userID)
	}
	return u.carts.Save(ctx, userID, c)
}

// Checkout turns the cart into an order at current prices and clears the
// cart. The cart is cleared only after the order commits.
func (u *orderUseCaseImpl) Checkout(ctx context.Context, userID uuid.UUID) (*order.Order, error) {
	c, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, order.ErrEmptyCart
	}

	ids := make([]int64, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	products, err := u.productRepo.FindByIDs(ctx, u.pool, ids)
	if err != nil {
		return nil, err
	}

	placed, err := shared.RunInTx(ctx, u.pool, func(tx db.DBTX) (*order.Order, error) {
		o, err := order.Checkout(userID, c, products)
		if err != nil {
			return nil, err
		}
		id, orderedAt, err := u.orderRepo.Create(ctx, tx, o)
		if err != nil {
			return nil, err
		}
		return order.Reconstruct(id, userID, orderedAt, o.Lines()), nil
	})
	if err != nil {
		return nil, err
	}

	if err := u.carts.Delete(ctx, userID); err != nil {
		return nil, err
	}

	u.notifier.Publish(ctx, queue.KeyOrderPlaced, map[string]any{
		"order_id":    placed.ID(),
		"user_id":     userID,
		"total_cents": placed.TotalCents(),
	})
	return placed, nil
}

func (u *orderUseCaseImpl) ListOrders(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	return u.orderRepo.FindByUser(ctx, u.pool, userID)
}
