package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Config describes a demo scenario: one hotel with its rooms, the
// customers to register, and the stays the driver will attempt in order.
type Config struct {
	Logger    LoggerConfig     `yaml:"logger"`
	Hotel     HotelConfig      `yaml:"hotel"     validate:"required"`
	Customers []CustomerConfig `yaml:"customers" validate:"min=1,dive"`
	Stays     []StayConfig     `yaml:"stays"     validate:"dive"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type HotelConfig struct {
	ID      string       `yaml:"id"      validate:"required"`
	Name    string       `yaml:"name"    validate:"required"`
	Address string       `yaml:"address" validate:"required"`
	Rooms   []RoomConfig `yaml:"rooms"   validate:"min=1,dive"`
}

type RoomConfig struct {
	ID            string  `yaml:"id"              validate:"required"`
	Number        string  `yaml:"number"          validate:"required"`
	Type          string  `yaml:"type"            validate:"required,oneof=SINGLE DOUBLE SUITE DELUXE"`
	PricePerNight float64 `yaml:"price_per_night" validate:"gt=0"`
	Capacity      int     `yaml:"capacity"        validate:"gt=0"`
}

type CustomerConfig struct {
	ID    string `yaml:"id"    validate:"required"`
	Name  string `yaml:"name"  validate:"required"`
	Email string `yaml:"email" validate:"required,contains=@"`
	Phone string `yaml:"phone" validate:"required"`
}

type StayConfig struct {
	CustomerID string `yaml:"customer_id" validate:"required"`
	RoomID     string `yaml:"room_id"     validate:"required"`
	CheckIn    string `yaml:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string `yaml:"check_out"   validate:"required,datetime=2006-01-02"`
}

// Dates parses the stay's date range.
func (s StayConfig) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, s.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse check-in: %w", err)
	}
	checkOut, err = time.Parse(dateLayout, s.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse check-out: %w", err)
	}
	return checkIn, checkOut, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
