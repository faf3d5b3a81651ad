package domain

import (
	"fmt"
	"time"
)

// Booking is a reservation connecting one customer and one room for a
// date range. Everything but the status is fixed at construction; the
// total price snapshots the room's nightly rate at that instant, so later
// rate changes do not affect existing bookings.
//
// The booking does not own its customer or room, and constructing it does
// not register it anywhere. Callers attach it explicitly via
// Customer.AddBooking and Room.AddBooking; an unregistered booking is
// legal but invisible to availability and cancellation queries.
type Booking struct {
	id         string
	customer   *Customer
	room       *Room
	checkIn    time.Time
	checkOut   time.Time
	totalPrice float64
	status     BookingStatus
}

func NewBooking(id string, customer *Customer, room *Room, checkIn, checkOut time.Time) (*Booking, error) {
	if err := requireString(id, "booking id"); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", ErrValidation)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room cannot be nil", ErrValidation)
	}
	in, out, err := validateStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		id:       id,
		customer: customer,
		room:     room,
		checkIn:  in,
		checkOut: out,
		status:   StatusPending,
	}
	total, err := room.TotalPrice(b.Nights())
	if err != nil {
		return nil, err
	}
	b.totalPrice = total
	return b, nil
}

// Nights is the whole-day difference between check-out and check-in,
// always >= 1 for a constructed booking.
func (b *Booking) Nights() int {
	return int(b.checkOut.Sub(b.checkIn) / (24 * time.Hour))
}

func (b *Booking) Confirm() error {
	switch b.status {
	case StatusCancelled:
		return fmt.Errorf("%w: cannot confirm a cancelled booking", ErrIllegalState)
	case StatusCompleted:
		return fmt.Errorf("%w: cannot confirm a completed booking", ErrIllegalState)
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCancelled:
		return fmt.Errorf("%w: booking is already cancelled", ErrIllegalState)
	case StatusCompleted:
		return fmt.Errorf("%w: cannot cancel a completed booking", ErrIllegalState)
	}
	b.status = StatusCancelled
	return nil
}

// SetStatus overwrites the status without the Confirm/Cancel transition
// guards. It is the only path to COMPLETED. Misuse can violate the state
// machine, so prefer Confirm and Cancel.
func (b *Booking) SetStatus(status BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid booking status %q", ErrValidation, status)
	}
	b.status = status
	return nil
}

func (b *Booking) ID() string { return b.id }

func (b *Booking) Customer() *Customer { return b.customer }

func (b *Booking) Room() *Room { return b.room }

func (b *Booking) CheckIn() time.Time { return b.checkIn }

func (b *Booking) CheckOut() time.Time { return b.checkOut }

func (b *Booking) TotalPrice() float64 { return b.totalPrice }

func (b *Booking) Status() BookingStatus { return b.status }

func (b *Booking) String() string {
	return fmt.Sprintf("Booking{id=%s, customer=%s, room=%s, nights=%d, total=%.2f, status=%s}",
		b.id, b.customer.Name(), b.room.Number(), b.Nights(), b.totalPrice, b.status)
}
