package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pgolubev/hotelbooking/config"
	"github.com/pgolubev/hotelbooking/internal/domain"
	"github.com/pgolubev/hotelbooking/internal/service/reservation"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Logger.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Logger.Level)
		if err != nil {
			log.Fatalf("parse log level: %v", err)
		}
		log.SetLevel(lvl)
	}

	hotel, err := buildHotel(cfg.Hotel)
	if err != nil {
		log.Fatalf("build hotel: %v", err)
	}
	customers, err := buildCustomers(cfg.Customers)
	if err != nil {
		log.Fatalf("build customers: %v", err)
	}

	log.WithFields(logrus.Fields{
		"hotel":     hotel.Name(),
		"rooms":     len(hotel.Rooms()),
		"customers": len(customers),
	}).Info("scenario loaded")

	svc := reservation.NewService(hotel, log)
	if err := runScenario(log, svc, customers, cfg.Stays); err != nil {
		log.Fatalf("scenario failed: %v", err)
	}
}

func buildHotel(cfg config.HotelConfig) (*domain.Hotel, error) {
	hotel, err := domain.NewHotel(cfg.ID, cfg.Name, cfg.Address)
	if err != nil {
		return nil, err
	}
	for _, rc := range cfg.Rooms {
		roomType, err := domain.ParseRoomType(rc.Type)
		if err != nil {
			return nil, err
		}
		room, err := domain.NewRoom(rc.ID, rc.Number, roomType, rc.PricePerNight, rc.Capacity)
		if err != nil {
			return nil, err
		}
		if err := hotel.AddRoom(room); err != nil {
			return nil, err
		}
	}
	return hotel, nil
}

func buildCustomers(cfgs []config.CustomerConfig) (map[string]*domain.Customer, error) {
	customers := make(map[string]*domain.Customer, len(cfgs))
	for _, cc := range cfgs {
		c, err := domain.NewCustomer(cc.ID, cc.Name, cc.Email, cc.Phone)
		if err != nil {
			return nil, err
		}
		customers[c.ID()] = c
	}
	return customers, nil
}

// runScenario walks the configured stays, books what it can, then cancels
// the first booking and shows the room freed up again.
func runScenario(log *logrus.Logger, svc *reservation.Service, customers map[string]*domain.Customer, stays []config.StayConfig) error {
	var bookings []*domain.Booking

	for _, stay := range stays {
		customer, ok := customers[stay.CustomerID]
		if !ok {
			return errors.New("unknown customer " + stay.CustomerID)
		}
		checkIn, checkOut, err := stay.Dates()
		if err != nil {
			return err
		}

		if _, err := svc.AvailableRooms(checkIn, checkOut); err != nil {
			return err
		}

		booking, err := svc.MakeReservation(customer, stay.RoomID, checkIn, checkOut)
		if errors.Is(err, reservation.ErrRoomUnavailable) {
			log.WithFields(logrus.Fields{
				"customer_id": stay.CustomerID,
				"room_id":     stay.RoomID,
				"check_in":    stay.CheckIn,
				"check_out":   stay.CheckOut,
			}).Warn("room unavailable, stay skipped")
			continue
		}
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"booking_id": booking.ID(),
			"customer":   customer.Name(),
			"room":       booking.Room().Number(),
			"room_type":  booking.Room().Type().DisplayName(),
			"nights":     booking.Nights(),
			"total":      booking.TotalPrice(),
			"status":     booking.Status().DisplayName(),
		}).Info("booking placed")
		bookings = append(bookings, booking)
	}

	var revenue float64
	for _, b := range bookings {
		revenue += b.TotalPrice()
	}
	log.WithFields(logrus.Fields{
		"bookings": len(bookings),
		"revenue":  revenue,
	}).Info("scenario summary")

	if len(bookings) == 0 {
		return nil
	}

	first := bookings[0]
	cancelled, err := svc.CancelReservation(first.Customer(), first.ID())
	if err != nil {
		return err
	}
	if cancelled {
		log.WithFields(logrus.Fields{
			"booking_id": first.ID(),
			"status":     first.Status().DisplayName(),
		}).Info("first booking cancelled, room freed")
	}

	// The cancelled stay no longer blocks its room.
	available, err := svc.AvailableRooms(first.CheckIn(), first.CheckOut())
	if err != nil {
		return err
	}
	for _, room := range available {
		if room.ID() == first.Room().ID() {
			log.WithField("room", room.Number()).Info("room available again")
		}
	}
	return nil
}
