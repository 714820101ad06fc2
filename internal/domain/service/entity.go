package service

import "errors"

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidCode     = errors.New("subtype code must be 1-3 characters")
)

// Service is a bookable unit. Rooms and restaurants carry a subtype record
// with a short code and a maximum capacity; at most one subtype per service,
// matching its type.
type Service struct {
	id         int64
	typ        Type
	priceCents int64
	status     Status
	code       string
	capacity   int
}

func Reconstruct(id int64, typ Type, priceCents int64, status Status, code string, capacity int) *Service {
	return &Service{
		id:         id,
		typ:        typ,
		priceCents: priceCents,
		status:     status,
		code:       code,
		capacity:   capacity,
	}
}

func (s *Service) ID() int64         { return s.id }
func (s *Service) Type() Type        { return s.typ }
func (s *Service) PriceCents() int64 { return s.priceCents }
func (s *Service) Status() Status    { return s.status }
func (s *Service) Code() string      { return s.code }
func (s *Service) Capacity() int     { return s.capacity }

func (s *Service) IsAvailable() bool {
	return s.status == StatusAvailable
}

// Fits reports whether the party fits the subtype capacity. Services without
// a subtype record (pool, playground) never fit a slot booking.
func (s *Service) Fits(partySize int) bool {
	return s.typ.IsReservable() && partySize > 0 && partySize <= s.capacity
}
