// Package booking implements the two-step booking wizard as an explicit
// state machine: CollectingDetails -> ReviewingPayment -> Succeeded, with a
// back edge that preserves everything the customer typed. Succeeded is only
// reachable through a verified payment confirmation; a dismissed payment
// window leaves the flow in review.
package booking

import (
	"context"

	"cleanhurghada/locale"
	"cleanhurghada/models"
	"cleanhurghada/services/payment"
	"cleanhurghada/services/pricing"
)

// NewFlow starts a wizard from a calculator quote (or a zero-value quote for
// direct "Book Cleaning"). A pre-selected area of "Other" is not copied into
// the draft: the customer must type the area out.
func NewFlow(quote models.Quote) *models.BookingFlow {
	area := quote.Area
	if area == models.AreaOther {
		area = ""
	}
	return &models.BookingFlow{
		State: models.StateCollectingDetails,
		Draft: models.BookingDraft{
			Area:              area,
			Details:           quote.Details,
			Price:             quote.Price,
			CleanerPreference: models.CrewAny,
		},
	}
}

// DetailsInput carries the CollectingDetails form.
type DetailsInput struct {
	Name              string                `json:"name"`
	Phone             string                `json:"phone"`
	Area              string                `json:"area"`
	Date              string                `json:"date"`
	CleanerPreference models.CrewPreference `json:"cleanerPreference"`
}

// SubmitDetails validates the form and advances to ReviewingPayment. Any
// missing required field is a ValidationError and the state does not move.
func (in DetailsInput) validate() error {
	if in.Name == "" {
		return missing("name")
	}
	if in.Phone == "" {
		return missing("phone")
	}
	if in.Area == "" {
		return missing("area")
	}
	if in.Date == "" {
		return missing("date")
	}
	switch in.CleanerPreference {
	case models.CrewAny, models.CrewFemale, models.CrewMale:
	case "":
		// defaulted below
	default:
		return &ValidationError{Field: "cleanerPreference", Message: "must be any, female or male"}
	}
	return nil
}

func SubmitDetails(flow *models.BookingFlow, in DetailsInput) error {
	if flow.State != models.StateCollectingDetails {
		return &TransitionError{From: string(flow.State), Op: "submit details"}
	}
	if err := in.validate(); err != nil {
		return err
	}
	pref := in.CleanerPreference
	if pref == "" {
		pref = models.CrewAny
	}
	flow.Draft.Name = in.Name
	flow.Draft.Phone = in.Phone
	flow.Draft.Area = in.Area
	flow.Draft.Date = in.Date
	flow.Draft.CleanerPreference = pref
	flow.State = models.StateReviewingPayment
	return nil
}

// Back returns to CollectingDetails. The draft is untouched, so nothing the
// customer entered is lost.
func Back(flow *models.BookingFlow) error {
	if flow.State != models.StateReviewingPayment {
		return &TransitionError{From: string(flow.State), Op: "go back"}
	}
	flow.State = models.StateCollectingDetails
	return nil
}

// FinalPrice is the payable total: base price plus the 15% service fee.
func FinalPrice(flow *models.BookingFlow) int {
	return pricing.FinalPrice(flow.Draft.Price)
}

// CrewLabel localizes a crew preference for display.
func CrewLabel(pref models.CrewPreference, lang locale.Language) string {
	t := locale.T(lang)
	switch pref {
	case models.CrewFemale:
		return t.FemaleCrew
	case models.CrewMale:
		return t.MaleCrew
	default:
		return t.AnyCrew
	}
}

// Summary renders the read-only payment review.
func Summary(flow *models.BookingFlow, lang locale.Language) (*models.BookingSummary, error) {
	if flow.State != models.StateReviewingPayment {
		return nil, &TransitionError{From: string(flow.State), Op: "review payment"}
	}
	return &models.BookingSummary{
		Service:    flow.Draft.Details,
		Area:       flow.Draft.Area,
		Date:       flow.Draft.Date,
		Crew:       CrewLabel(flow.Draft.CleanerPreference, lang),
		FinalPrice: FinalPrice(flow),
		Currency:   pricing.Currency,
	}, nil
}

// BeginPayment calls the gateway and records the order the confirmation must
// name. The state stays in ReviewingPayment until that confirmation arrives.
func BeginPayment(ctx context.Context, flow *models.BookingFlow, gw payment.Gateway) (*payment.Intent, error) {
	if flow.State != models.StateReviewingPayment {
		return nil, &TransitionError{From: string(flow.State), Op: "pay"}
	}
	intent, err := gw.InitiatePayment(ctx, FinalPrice(flow), payment.BillingInfo{
		Name:  flow.Draft.Name,
		Phone: flow.Draft.Phone,
		Area:  flow.Draft.Area,
	})
	if err != nil {
		return nil, err
	}
	flow.PendingOrderID = intent.OrderID
	flow.PendingAmount = FinalPrice(flow)
	return intent, nil
}

// ConfirmPayment advances to Succeeded, and only on a confirmation that names
// the pending order, matches its amount, and reports success. Anything else
// leaves the flow in ReviewingPayment with a typed error.
func ConfirmPayment(flow *models.BookingFlow, conf *models.PaymentConfirmation) error {
	if flow.State != models.StateReviewingPayment {
		return &TransitionError{From: string(flow.State), Op: "confirm payment"}
	}
	if flow.PendingOrderID == 0 {
		return ErrNoPendingOrder
	}
	if conf == nil || conf.OrderID != flow.PendingOrderID {
		return ErrConfirmationMismatch
	}
	if conf.AmountCents != int64(flow.PendingAmount)*100 {
		return ErrConfirmationMismatch
	}
	if !conf.Success {
		return ErrPaymentNotConfirmed
	}
	flow.State = models.StateSucceeded
	return nil
}
