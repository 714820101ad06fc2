package service

import "errors"

var (
	ErrInvalidType   = errors.New("invalid service type")
	ErrInvalidStatus = errors.New("invalid service status")
)

type Type string

const (
	TypeRoom       Type = "ROOM"
	TypeRestaurant Type = "RESTAURANT"
	TypePool       Type = "POOL"
	TypePlayground Type = "PLAYGROUND"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRoom, TypeRestaurant, TypePool, TypePlayground:
		return true
	default:
		return false
	}
}

// IsReservable reports whether the type carries a capacity subtype record
// and participates in slot booking. Pools and playgrounds are walk-in only.
func (t Type) IsReservable() bool {
	return t == TypeRoom || t == TypeRestaurant
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusUnavailable Status = "UNAVAILABLE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable:
		return true
	default:
		return false
	}
}
