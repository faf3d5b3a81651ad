package domain

import (
	"fmt"
	"time"
)

// Room is a bookable hotel room. It keeps every booking ever attached to
// it; inactive entries stay in the list and are skipped by availability
// checks. A room never removes a booking.
type Room struct {
	id            string
	number        string
	roomType      RoomType
	pricePerNight float64
	capacity      int
	bookings      []*Booking
}

func NewRoom(id, number string, roomType RoomType, pricePerNight float64, capacity int) (*Room, error) {
	if err := requireString(id, "room id"); err != nil {
		return nil, err
	}
	if err := requireString(number, "room number"); err != nil {
		return nil, err
	}
	if !roomType.Valid() {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrValidation, roomType)
	}
	if pricePerNight <= 0 {
		return nil, fmt.Errorf("%w: price per night must be positive", ErrValidation)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return &Room{
		id:            id,
		number:        number,
		roomType:      roomType,
		pricePerNight: pricePerNight,
		capacity:      capacity,
	}, nil
}

// IsAvailable reports whether no active booking overlaps the requested
// stay. The overlap test is boundary-inclusive: a booking checking out on
// the day another checks in still counts as a conflict.
func (r *Room) IsAvailable(checkIn, checkOut time.Time) (bool, error) {
	in, out, err := validateStay(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	for _, b := range r.bookings {
		if !b.Status().IsActive() {
			continue
		}
		if datesOverlap(in, out, b.CheckIn(), b.CheckOut()) {
			return false, nil
		}
	}
	return true, nil
}

func datesOverlap(start1, end1, start2, end2 time.Time) bool {
	return !end1.Before(start2) && !start1.After(end2)
}

// AddBooking appends unconditionally. Conflict checking is the caller's
// responsibility via IsAvailable before the booking is attached.
func (r *Room) AddBooking(b *Booking) error {
	if b == nil {
		return fmt.Errorf("%w: booking cannot be nil", ErrValidation)
	}
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *Room) TotalPrice(nights int) (float64, error) {
	if nights <= 0 {
		return 0, fmt.Errorf("%w: nights must be positive", ErrValidation)
	}
	return r.pricePerNight * float64(nights), nil
}

func (r *Room) ID() string { return r.id }

func (r *Room) Number() string { return r.number }

func (r *Room) Type() RoomType { return r.roomType }

func (r *Room) PricePerNight() float64 { return r.pricePerNight }

func (r *Room) Capacity() int { return r.capacity }

// Bookings returns a copy; callers cannot mutate the room's list.
func (r *Room) Bookings() []*Booking {
	out := make([]*Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *Room) SetNumber(number string) error {
	if err := requireString(number, "room number"); err != nil {
		return err
	}
	r.number = number
	return nil
}

func (r *Room) SetType(roomType RoomType) error {
	if !roomType.Valid() {
		return fmt.Errorf("%w: unknown room type %q", ErrValidation, roomType)
	}
	r.roomType = roomType
	return nil
}

// SetPricePerNight changes the nightly rate for future bookings only;
// totals of existing bookings are computed at construction and keep the
// old rate.
func (r *Room) SetPricePerNight(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price per night must be positive", ErrValidation)
	}
	r.pricePerNight = price
	return nil
}

func (r *Room) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	r.capacity = capacity
	return nil
}

func (r *Room) String() string {
	return fmt.Sprintf("Room{id=%s, number=%s, type=%s, price=%.2f, capacity=%d}",
		r.id, r.number, r.roomType, r.pricePerNight, r.capacity)
}
