package models

// CrewPreference is the customer's choice of cleaning staff.
type CrewPreference string

const (
	CrewAny    CrewPreference = "any"
	CrewFemale CrewPreference = "female"
	CrewMale   CrewPreference = "male"
)

// BookingState is the explicit state of the booking wizard. Transitions are
// owned by services/booking; nothing else writes this field.
type BookingState string

const (
	StateCollectingDetails BookingState = "collecting_details"
	StateReviewingPayment  BookingState = "reviewing_payment"
	StateSucceeded         BookingState = "succeeded"
)

// AreaOther is the sentinel forcing a free-text area instead of the
// enumerated Hurghada district list.
const AreaOther = "Other"

// BookingDraft holds the customer's in-progress booking. It lives inside the
// chat session and is discarded when the flow closes.
type BookingDraft struct {
	Name              string         `json:"name"`
	Phone             string         `json:"phone"`
	Area              string         `json:"area"`
	Date              string         `json:"date"`
	Details           string         `json:"details"`
	Price             int            `json:"price"` // base price in EGP, before the service fee
	CleanerPreference CrewPreference `json:"cleanerPreference"`
}

// BookingFlow is the wizard snapshot carried by a chat session: the tagged
// state, the draft being filled, and the Paymob order awaiting confirmation.
type BookingFlow struct {
	State          BookingState `json:"state"`
	Draft          BookingDraft `json:"draft"`
	PendingOrderID int64        `json:"pendingOrderId,omitempty"`
	PendingAmount  int          `json:"pendingAmount,omitempty"` // final EGP amount sent to Paymob
}

// BookingSummary is the read-only review shown before payment.
type BookingSummary struct {
	Service    string `json:"service"`
	Area       string `json:"area"`
	Date       string `json:"date"`
	Crew       string `json:"crew"` // localized crew-preference label
	FinalPrice int    `json:"finalPrice"`
	Currency   string `json:"currency"`
}
