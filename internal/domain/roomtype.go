package domain

import "fmt"

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeSuite  RoomType = "SUITE"
	RoomTypeDeluxe RoomType = "DELUXE"
)

var roomTypes = map[RoomType]struct {
	displayName      string
	standardCapacity int
}{
	RoomTypeSingle: {"Single Room", 1},
	RoomTypeDouble: {"Double Room", 2},
	RoomTypeSuite:  {"Suite", 4},
	RoomTypeDeluxe: {"Deluxe Room", 3},
}

func (t RoomType) Valid() bool {
	_, ok := roomTypes[t]
	return ok
}

func (t RoomType) DisplayName() string {
	return roomTypes[t].displayName
}

// StandardCapacity is the usual occupancy for the type; individual rooms
// may override it.
func (t RoomType) StandardCapacity() int {
	return roomTypes[t].standardCapacity
}

func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown room type %q", ErrValidation, s)
	}
	return t, nil
}
