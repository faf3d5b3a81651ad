package domain

import (
	"fmt"
	"strings"
)

// Customer owns the bookings placed under its name. Entries are only ever
// appended; cancellation flips the booking's status in place and keeps
// the list entry.
type Customer struct {
	id       string
	name     string
	email    string
	phone    string
	bookings []*Booking
}

func NewCustomer(id, name, email, phone string) (*Customer, error) {
	if err := requireString(id, "customer id"); err != nil {
		return nil, err
	}
	if err := requireString(name, "customer name"); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := requireString(phone, "phone number"); err != nil {
		return nil, err
	}
	return &Customer{id: id, name: name, email: email, phone: phone}, nil
}

func validateEmail(email string) error {
	if err := requireString(email, "email"); err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email must contain @", ErrValidation)
	}
	return nil
}

// AddBooking appends unconditionally; no duplicate-id check is performed.
func (c *Customer) AddBooking(b *Booking) error {
	if b == nil {
		return fmt.Errorf("%w: booking cannot be nil", ErrValidation)
	}
	c.bookings = append(c.bookings, b)
	return nil
}

// CancelBooking finds the first booking with the given id and cancels it.
// A blank or unmatched id returns (false, nil). On a match the booking's
// Cancel is invoked unconditionally, so cancelling an already-cancelled
// booking returns its ErrIllegalState instead of a plain false.
func (c *Customer) CancelBooking(bookingID string) (bool, error) {
	if strings.TrimSpace(bookingID) == "" {
		return false, nil
	}
	for _, b := range c.bookings {
		if b.ID() == bookingID {
			if err := b.Cancel(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (c *Customer) ID() string { return c.id }

func (c *Customer) Name() string { return c.name }

func (c *Customer) Email() string { return c.email }

func (c *Customer) Phone() string { return c.phone }

// Bookings returns a copy; callers cannot mutate the customer's list.
func (c *Customer) Bookings() []*Booking {
	out := make([]*Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

func (c *Customer) SetName(name string) error {
	if err := requireString(name, "customer name"); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) SetPhone(phone string) error {
	if err := requireString(phone, "phone number"); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, name=%s, email=%s, bookings=%d}",
		c.id, c.name, c.email, len(c.bookings))
}
