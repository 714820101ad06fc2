package order

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownProduct  = errors.New("unknown product in cart")
)

type Product struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
}

// Cart is per-session state: product id -> quantity. It lives in the
// session store, never in memory across requests.
type Cart map[int64]int

func (c Cart) Add(productID int64, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	c[productID] += qty
	return nil
}

func (c Cart) Remove(productID int64) {
	delete(c, productID)
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

type Line struct {
	ProductID      int64
	Quantity       int
	UnitPriceCents int64
}

func (l Line) TotalCents() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}

type Order struct {
	id        int64
	userID    uuid.UUID
	orderedAt time.Time
	lines     []Line
}

// Checkout materializes a cart into order lines, snapshotting current
// product prices. Line order is stable by product id.
func Checkout(userID uuid.UUID, cart Cart, products map[int64]Product) (*Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]Line, 0, len(ids))
	for _, id := range ids {
		p, ok := products[id]
		if !ok {
			return nil, ErrUnknownProduct
		}
		qty := cart[id]
		if qty <= 0 {
			return nil, ErrInvalidQuantity
		}
		lines = append(lines, Line{
			ProductID:      id,
			Quantity:       qty,
			UnitPriceCents: p.PriceCents,
		})
	}

	return &Order{userID: userID, lines: lines}, nil
}

func Reconstruct(id int64, userID uuid.UUID, orderedAt time.Time, lines []Line) *Order {
	return &Order{id: id, userID: userID, orderedAt: orderedAt, lines: lines}
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) OrderedAt() time.Time { return o.orderedAt }
func (o *Order) Lines() []Line        { return o.lines }

func (o *Order) TotalCents() int64 {
	var total int64
	for _, l := range o.lines {
		total += l.TotalCents()
	}
	return total
}
