package response

import (
	"resort-booking/internal/domain/service"
)

type ServiceResponse struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	PriceCents int64  `json:"price_cents"`
	Status     string `json:"status"`
	Code       string `json:"code,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
}

func FromService(s *service.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:         s.ID(),
		Type:       s.Type().String(),
		PriceCents: s.PriceCents(),
		Status:     s.Status().String(),
		Code:       s.Code(),
		Capacity:   s.Capacity(),
	}
}

func FromServices(services []*service.Service) []*ServiceResponse {
	res := make([]*ServiceResponse, len(services))
	for i, s := range services {
		res[i] = FromService(s)
	}
	return res
}
