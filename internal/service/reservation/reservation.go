package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pgolubev/hotelbooking/internal/domain"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")
)

// Service drives the documented booking flow against a single hotel:
// availability lookup, then construct, confirm and register a booking.
// It is a plain caller of the domain entities and adds no linking of its
// own beyond the explicit registration steps.
type Service struct {
	hotel *domain.Hotel
	log   *logrus.Logger
}

func NewService(hotel *domain.Hotel, log *logrus.Logger) *Service {
	return &Service{hotel: hotel, log: log}
}

func (s *Service) AvailableRooms(checkIn, checkOut time.Time) ([]*domain.Room, error) {
	rooms, err := s.hotel.FindAvailableRooms(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"hotel_id":  s.hotel.ID(),
		"check_in":  checkIn.Format(time.DateOnly),
		"check_out": checkOut.Format(time.DateOnly),
		"available": len(rooms),
	}).Info("availability checked")
	return rooms, nil
}

// MakeReservation books the given room for the customer. The booking is
// confirmed and then registered with the customer and the room as three
// separate steps; nothing here is atomic.
func (s *Service) MakeReservation(customer *domain.Customer, roomID string, checkIn, checkOut time.Time) (*domain.Booking, error) {
	room := s.hotel.Room(roomID)
	if room == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}

	ok, err := room.IsAvailable(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: room %s", ErrRoomUnavailable, roomID)
	}

	booking, err := domain.NewBooking(uuid.NewString(), customer, room, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if err := booking.Confirm(); err != nil {
		return nil, err
	}
	if err := customer.AddBooking(booking); err != nil {
		return nil, err
	}
	if err := room.AddBooking(booking); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id":  booking.ID(),
		"customer_id": customer.ID(),
		"room_id":     roomID,
		"nights":      booking.Nights(),
		"total":       booking.TotalPrice(),
	}).Info("reservation confirmed")
	return booking, nil
}

// CancelReservation cancels one of the customer's bookings by id. It
// keeps the customer's contract: (false, nil) for a blank or unknown id,
// and a propagated ErrIllegalState when the matched booking cannot be
// cancelled again.
func (s *Service) CancelReservation(customer *domain.Customer, bookingID string) (bool, error) {
	cancelled, err := customer.CancelBooking(bookingID)
	if err != nil {
		return false, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}
	if !cancelled {
		s.log.WithField("booking_id", bookingID).Warn("booking not found for cancellation")
		return false, nil
	}
	s.log.WithFields(logrus.Fields{
		"booking_id":  bookingID,
		"customer_id": customer.ID(),
	}).Info("reservation cancelled")
	return true, nil
}
