package repository

import (
	"context"
	"time"

	"resort-booking/internal/domain/order"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) FindAll(ctx context.Context, dbtx db.DBTX) ([]order.Product, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id, name, description, price_cents
		FROM products ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query products", err)
	}
	defer rows.Close()

	var result []order.Product
	for rows.Next() {
		var p order.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return result, nil
}

// FindByIDs resolves the products in a cart. Missing ids are simply absent
// from the returned map; the caller decides whether that is an error.
func (r *ProductRepository) FindByIDs(ctx context.Context, dbtx db.DBTX, ids []int64) (map[int64]order.Product, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id, name, description, price_cents
		FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query products by id", err)
	}
	defer rows.Close()

	result := make(map[int64]order.Product, len(ids))
	for rows.Next() {
		var p order.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return result, nil
}

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order and its lines, returning the assigned id and
// the database-side order timestamp.
func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (int64, time.Time, error) {
	var (
		id        int64
		orderedAt time.Time
	)
	err := dbtx.QueryRow(ctx, `
		INSERT INTO orders (user_id) VALUES ($1)
		RETURNING id, ordered_at`, o.UserID()).Scan(&id, &orderedAt)
	if err != nil {
		return 0, time.Time{}, infra.WrapRepoErr("failed to create order", err)
	}

	for _, l := range o.Lines() {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO order_lines (order_id, product_id, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4)`,
			id, l.ProductID, l.Quantity, l.UnitPriceCents)
		if err != nil {
			return 0, time.Time{}, infra.WrapRepoErr("failed to create order line", err)
		}
	}
	return id, orderedAt, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*order.Order, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT o.id, o.ordered_at,
		       l.product_id, l.quantity, l.unit_price_cents
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE o.user_id = $1
		ORDER BY o.id DESC, l.product_id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query user orders", err)
	}
	defer rows.Close()

	var (
		result    []*order.Order
		currentID int64
		orderedAt time.Time
		lines     []order.Line
	)
	flush := func() {
		if lines != nil {
			result = append(result, order.Reconstruct(currentID, userID, orderedAt, lines))
		}
	}
	for rows.Next() {
		var (
			id int64
			at time.Time
			l  order.Line
		)
		if err := rows.Scan(&id, &at, &l.ProductID, &l.Quantity, &l.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		if id != currentID {
			flush()
			currentID, orderedAt, lines = id, at, nil
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	flush()
	return result, nil
}
