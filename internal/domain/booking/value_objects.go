package booking

import (
	"errors"
	"time"

	"resort-booking/internal/domain/service"
)

var (
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidMealSlot  = errors.New("invalid meal slot")
	ErrPastDate         = errors.New("date cannot be in the past")
)

// Fixed room occupancy boundaries: guests check in at 14:00 and check out
// at 10:00 the following day at the earliest.
const (
	CheckInHour  = 14
	CheckOutHour = 10
)

type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
)

func (m MealSlot) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	default:
		return false
	}
}

func NewMealSlot(s string) (MealSlot, error) {
	m := MealSlot(s)
	if !m.IsValid() {
		return "", ErrInvalidMealSlot
	}
	return m, nil
}

// window returns the fixed two-hour serving window start hour.
func (m MealSlot) startHour() int {
	switch m {
	case MealBreakfast:
		return 8
	case MealLunch:
		return 12
	default:
		return 19
	}
}

// Slot is one time-bounded occupancy of a service.
type Slot struct {
	start time.Time
	end   time.Time
}

// NewRoomStay builds the occupancy slot for a room stay. Dates are
// interpreted in loc; the stay spans checkIn 14:00 through checkOut 10:00
// and must cover at least one night.
func NewRoomStay(checkIn, checkOut time.Time, loc *time.Location) (Slot, error) {
	ci := dateOnly(checkIn, loc)
	co := dateOnly(checkOut, loc)
	if !co.After(ci) {
		return Slot{}, ErrInvalidDateRange
	}
	return Slot{
		start: ci.Add(CheckInHour * time.Hour),
		end:   co.Add(CheckOutHour * time.Hour),
	}, nil
}

// NewMealWindow builds the occupancy slot for a restaurant meal on the
// given date.
func NewMealWindow(date time.Time, meal MealSlot, loc *time.Location) (Slot, error) {
	if !meal.IsValid() {
		return Slot{}, ErrInvalidMealSlot
	}
	d := dateOnly(date, loc)
	start := d.Add(time.Duration(meal.startHour()) * time.Hour)
	return Slot{start: start, end: start.Add(2 * time.Hour)}, nil
}

func ReconstructSlot(start, end time.Time) Slot {
	return Slot{start: start, end: end}
}

// InPast reports whether the slot starts on a calendar date before now's.
// Same-day bookings are allowed.
func (s Slot) InPast(now time.Time) bool {
	return dateOnly(s.start, s.start.Location()).Before(dateOnly(now, s.start.Location()))
}

func (s Slot) Start() time.Time { return s.start }
func (s Slot) End() time.Time   { return s.end }

func (s Slot) IsZero() bool {
	return s.start.IsZero() && s.end.IsZero()
}

// Nights counts the calendar nights covered by a room stay.
func (s Slot) Nights() int {
	start := dateOnly(s.start, s.start.Location())
	end := dateOnly(s.end, s.end.Location())
	n := int(end.Sub(start).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

// overlapsStrict treats [start, end) half-open: back-to-back slots do not
// conflict. Used for meal windows.
func (s Slot) overlapsStrict(other Slot) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}

// overlapsDates compares calendar-date bounds inclusively, so a stay ending
// on a day conflicts with one starting that same day. This mirrors the
// date-only room availability rule the system has always used; reconciling
// it with the strict meal-slot rule would silently change which stays the
// search offers.
func (s Slot) overlapsDates(other Slot) bool {
	s1 := dateOnly(s.start, s.start.Location())
	e1 := dateOnly(s.end, s.end.Location())
	s2 := dateOnly(other.start, other.start.Location())
	e2 := dateOnly(other.end, other.end.Location())
	return !s1.After(e2) && !s2.After(e1)
}

// ConflictsWith applies the overlap rule for the service type: inclusive
// date bounds for rooms, strict half-open intervals for meal slots.
func (s Slot) ConflictsWith(other Slot, typ service.Type) bool {
	if typ == service.TypeRoom {
		return s.overlapsDates(other)
	}
	return s.overlapsStrict(other)
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
