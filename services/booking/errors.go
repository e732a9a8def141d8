package booking

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed booking field. The flow does
// not transition while one of these is outstanding.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missing(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// TransitionError reports an operation applied in the wrong wizard state.
type TransitionError struct {
	From string
	Op   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from state %s", e.Op, e.From)
}

// ErrNoPendingOrder means a confirmation arrived for a flow that never
// initiated payment.
var ErrNoPendingOrder = errors.New("no payment order is pending for this booking")

// ErrConfirmationMismatch means the confirmation does not match the pending
// order or amount. It is treated as no confirmation at all.
var ErrConfirmationMismatch = errors.New("payment confirmation does not match the pending order")

// ErrPaymentNotConfirmed means the provider reported the transaction as not
// (or not yet) successful. The flow stays in review.
var ErrPaymentNotConfirmed = errors.New("payment was not confirmed by the provider")
