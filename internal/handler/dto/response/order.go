package response

import (
	"resort-booking/internal/domain/order"
	"resort-booking/internal/usecase"
)

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

func FromProducts(products []order.Product) []*ProductResponse {
	res := make([]*ProductResponse, len(products))
	for i, p := range products {
		res[i] = &ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.PriceCents,
		}
	}
	return res
}

type CartLineResponse struct {
	Product  *ProductResponse `json:"product"`
	Quantity int              `json:"quantity"`
}

type CartResponse struct {
	Lines      []*CartLineResponse `json:"lines"`
	TotalCents int64               `json:"total_cents"`
}

func FromCartView(v usecase.CartView) *CartResponse {
	lines := make([]*CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = &CartLineResponse{
			Product: &ProductResponse{
				ID:          l.Product.ID,
				Name:        l.Product.Name,
				Description: l.Product.Description,
				PriceCents:  l.Product.PriceCents,
			},
			Quantity: l.Quantity,
		}
	}
	return &CartResponse{Lines: lines, TotalCents: v.TotalCents}
}

type OrderLineResponse struct {
	ProductID      int64 `json:"product_id"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
}

type OrderResponse struct {
	ID         int64                `json:"id"`
	OrderedAt  int64                `json:"ordered_at"`
	TotalCents int64                `json:"total_cents"`
	Lines      []*OrderLineResponse `json:"lines"`
}

func FromOrder(o *order.Order) *OrderResponse {
	lines := make([]*OrderLineResponse, len(o.Lines()))
	for i, l := range o.Lines() {
		lines[i] = &OrderLineResponse{
			ProductID:      l.ProductID,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		}
	}
	return &OrderResponse{
		ID:         o.ID(),
		OrderedAt:  o.OrderedAt().Unix(),
		TotalCents: o.TotalCents(),
		Lines:      lines,
	}
}

func FromOrders(orders []*order.Order) []*OrderResponse {
	res := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = FromOrder(o)
	}
	return res
}
