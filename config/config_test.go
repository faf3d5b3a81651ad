package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenario = `
logger:
  level: debug
hotel:
  id: H001
  name: Grand Plaza Hotel
  address: 123 Main Street
  rooms:
    - id: R001
      number: "101"
      type: DOUBLE
      price_per_night: 150
      capacity: 2
customers:
  - id: C001
    name: John Doe
    email: john@example.com
    phone: "123-456-7890"
stays:
  - customer_id: C001
    room_id: R001
    check_in: 2025-02-01
    check_out: 2025-02-05
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validScenario))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "H001", cfg.Hotel.ID)
	require.Len(t, cfg.Hotel.Rooms, 1)
	assert.Equal(t, "DOUBLE", cfg.Hotel.Rooms[0].Type)
	assert.Equal(t, 150.0, cfg.Hotel.Rooms[0].PricePerNight)
	require.Len(t, cfg.Customers, 1)
	require.Len(t, cfg.Stays, 1)

	checkIn, checkOut, err := cfg.Stays[0].Dates()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), checkIn)
	assert.Equal(t, time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), checkOut)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_NotYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "{hotel: [broken"))
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{name: "unknown room type", replace: [2]string{"type: DOUBLE", "type: PENTHOUSE"}},
		{name: "zero price", replace: [2]string{"price_per_night: 150", "price_per_night: 0"}},
		{name: "zero capacity", replace: [2]string{"capacity: 2", "capacity: 0"}},
		{name: "email without at", replace: [2]string{"email: john@example.com", "email: john.example.com"}},
		{name: "malformed date", replace: [2]string{"check_in: 2025-02-01", "check_in: 01/02/2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(validScenario, tt.replace[0], tt.replace[1], 1)
			_, err := LoadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
