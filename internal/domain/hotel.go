package domain

import (
	"fmt"
	"strings"
	"time"
)

// Hotel owns an ordered collection of rooms keyed by room id. Rooms carry
// no back-reference to their hotel; removing one simply detaches it.
type Hotel struct {
	id      string
	name    string
	address string
	rooms   []*Room
}

func NewHotel(id, name, address string) (*Hotel, error) {
	if err := requireString(id, "hotel id"); err != nil {
		return nil, err
	}
	if err := requireString(name, "hotel name"); err != nil {
		return nil, err
	}
	if err := requireString(address, "hotel address"); err != nil {
		return nil, err
	}
	return &Hotel{id: id, name: name, address: address}, nil
}

func (h *Hotel) AddRoom(room *Room) error {
	if room == nil {
		return fmt.Errorf("%w: room cannot be nil", ErrValidation)
	}
	if h.Room(room.ID()) != nil {
		return fmt.Errorf("%w: room with id %q already exists", ErrValidation, room.ID())
	}
	h.rooms = append(h.rooms, room)
	return nil
}

// RemoveRoom detaches the room with the given id and reports whether one
// was found. The room object itself is untouched; callers may keep
// references to it.
func (h *Hotel) RemoveRoom(roomID string) (bool, error) {
	if err := requireString(roomID, "room id"); err != nil {
		return false, err
	}
	for i, r := range h.rooms {
		if r.ID() == roomID {
			h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// FindAvailableRooms returns, in insertion order, every room free for the
// requested stay. An empty hotel yields an empty slice.
func (h *Hotel) FindAvailableRooms(checkIn, checkOut time.Time) ([]*Room, error) {
	if _, _, err := validateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	available := make([]*Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		ok, err := r.IsAvailable(checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, r)
		}
	}
	return available, nil
}

// Room returns the room with the given id, or nil if the id is blank or
// unmatched. It never fails.
func (h *Hotel) Room(roomID string) *Room {
	if strings.TrimSpace(roomID) == "" {
		return nil
	}
	for _, r := range h.rooms {
		if r.ID() == roomID {
			return r
		}
	}
	return nil
}

func (h *Hotel) ID() string { return h.id }

func (h *Hotel) Name() string { return h.name }

func (h *Hotel) Address() string { return h.address }

// Rooms returns a copy; callers cannot mutate the hotel's collection.
func (h *Hotel) Rooms() []*Room {
	out := make([]*Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

func (h *Hotel) SetName(name string) error {
	if err := requireString(name, "hotel name"); err != nil {
		return err
	}
	h.name = name
	return nil
}

func (h *Hotel) SetAddress(address string) error {
	if err := requireString(address, "hotel address"); err != nil {
		return err
	}
	h.address = address
	return nil
}

func (h *Hotel) String() string {
	return fmt.Sprintf("Hotel{id=%s, name=%s, address=%s, rooms=%d}",
		h.id, h.name, h.address, len(h.rooms))
}
