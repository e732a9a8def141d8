package models

import "cleanhurghada/locale"

// ActiveWidget is the single widget slot of a conversation. Mutual exclusion
// between the calculator, booking and rating panels is structural: there is
// exactly one field and it holds exactly one value.
type ActiveWidget string

const (
	WidgetNone       ActiveWidget = "none"
	WidgetCalculator ActiveWidget = "calculator"
	WidgetBooking    ActiveWidget = "booking"
	WidgetRating     ActiveWidget = "rating"
)

// ChatSession is one visitor's conversation. The transcript is append-only;
// the session dies with its TTL, nothing is persisted beyond it.
type ChatSession struct {
	ID           string          `json:"id"`
	Lang         locale.Language `json:"lang"`
	Messages     []Message       `json:"messages"`
	ActiveWidget ActiveWidget    `json:"activeWidget"`
	Booking      *BookingFlow    `json:"booking,omitempty"`
}
