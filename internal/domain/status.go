package domain

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

var statusDisplayNames = map[BookingStatus]string{
	StatusPending:   "Pending Confirmation",
	StatusConfirmed: "Confirmed",
	StatusCancelled: "Cancelled",
	StatusCompleted: "Completed",
}

func (s BookingStatus) Valid() bool {
	_, ok := statusDisplayNames[s]
	return ok
}

func (s BookingStatus) DisplayName() string {
	return statusDisplayNames[s]
}

// IsActive reports whether the booking blocks a room for its dates.
// Cancelled and completed bookings are ignored by availability checks.
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}
