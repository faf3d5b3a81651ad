package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_Valid(t *testing.T) {
	customer, err := NewCustomer("C001", "John Doe", "john@example.com", "123-456-7890")
	require.NoError(t, err)

	assert.Equal(t, "C001", customer.ID())
	assert.Equal(t, "John Doe", customer.Name())
	assert.Equal(t, "john@example.com", customer.Email())
	assert.Equal(t, "123-456-7890", customer.Phone())
	assert.Empty(t, customer.Bookings())
}

func TestNewCustomer_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		cname string
		email string
		phone string
	}{
		{"blank id", " ", "John", "john@example.com", "123"},
		{"blank name", "C001", "", "john@example.com", "123"},
		{"blank email", "C001", "John", "  ", "123"},
		{"email without at", "C001", "John", "john.example.com", "123"},
		{"blank phone", "C001", "John", "john@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.id, tt.cname, tt.email, tt.phone)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCustomer_Setters(t *testing.T) {
	customer := newTestCustomer(t)

	require.NoError(t, customer.SetName("Jane Doe"))
	assert.Equal(t, "Jane Doe", customer.Name())
	assert.ErrorIs(t, customer.SetName(" "), ErrValidation)

	require.NoError(t, customer.SetEmail("jane@example.com"))
	assert.ErrorIs(t, customer.SetEmail("jane.example.com"), ErrValidation)
	assert.Equal(t, "jane@example.com", customer.Email())

	require.NoError(t, customer.SetPhone("987-654-3210"))
	assert.ErrorIs(t, customer.SetPhone(""), ErrValidation)
}

func TestCustomer_AddBooking(t *testing.T) {
	customer := newTestCustomer(t)
	assert.ErrorIs(t, customer.AddBooking(nil), ErrValidation)

	booking := newTestBooking(t)
	require.NoError(t, customer.AddBooking(booking))
	// no duplicate check: the same booking may be appended twice
	require.NoError(t, customer.AddBooking(booking))
	assert.Len(t, customer.Bookings(), 2)
}

func TestCustomer_CancelBooking(t *testing.T) {
	customer := newTestCustomer(t)
	room := newTestRoom(t)
	booking, err := NewBooking("B001", customer, room, date(2025, 2, 1), date(2025, 2, 5))
	require.NoError(t, err)
	require.NoError(t, booking.Confirm())
	require.NoError(t, customer.AddBooking(booking))

	cancelled, err := customer.CancelBooking("B001")
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, StatusCancelled, booking.Status())
	assert.Len(t, customer.Bookings(), 1, "cancellation keeps the list entry")
}

func TestCustomer_CancelBooking_NoMatch(t *testing.T) {
	customer := newTestCustomer(t)

	cancelled, err := customer.CancelBooking("")
	require.NoError(t, err)
	assert.False(t, cancelled)

	cancelled, err = customer.CancelBooking("   ")
	require.NoError(t, err)
	assert.False(t, cancelled)

	cancelled, err = customer.CancelBooking("B999")
	require.NoError(t, err)
	assert.False(t, cancelled)
}

// A second cancel finds the booking again and calls Cancel
// unconditionally, so the illegal transition propagates out of a method
// that otherwise looks boolean-only.
func TestCustomer_CancelBooking_Twice(t *testing.T) {
	customer := newTestCustomer(t)
	booking, err := NewBooking("B001", customer, newTestRoom(t), date(2025, 2, 1), date(2025, 2, 5))
	require.NoError(t, err)
	require.NoError(t, customer.AddBooking(booking))

	cancelled, err := customer.CancelBooking("B001")
	require.NoError(t, err)
	require.True(t, cancelled)

	cancelled, err = customer.CancelBooking("B001")
	assert.ErrorIs(t, err, ErrIllegalState)
	assert.False(t, cancelled)
	assert.Equal(t, StatusCancelled, booking.Status())
}

// Cancelling through the customer never touches the room's copy of the
// relationship; the room still lists the booking.
func TestCustomer_CancelBooking_DoesNotTouchRoom(t *testing.T) {
	customer := newTestCustomer(t)
	room := newTestRoom(t)
	booking, err := NewBooking("B001", customer, room, date(2025, 2, 1), date(2025, 2, 5))
	require.NoError(t, err)
	require.NoError(t, customer.AddBooking(booking))
	require.NoError(t, room.AddBooking(booking))

	_, err = customer.CancelBooking("B001")
	require.NoError(t, err)
	assert.Len(t, room.Bookings(), 1)
}

func TestCustomer_BookingsIsACopy(t *testing.T) {
	customer := newTestCustomer(t)
	booking := newTestBooking(t)
	require.NoError(t, customer.AddBooking(booking))

	view := customer.Bookings()
	view[0] = nil
	assert.Equal(t, booking, customer.Bookings()[0])
}
