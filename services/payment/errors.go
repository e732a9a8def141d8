package payment

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned before any network call when the Paymob
// credentials are missing. Configuration gaps are reported, never silent.
var ErrNotConfigured = errors.New("paymob credentials are not configured")

// ErrBadSignature is returned when a transaction callback fails HMAC
// verification.
var ErrBadSignature = errors.New("paymob callback signature mismatch")

// ProviderError wraps a non-2xx answer from Paymob with the step that failed.
type ProviderError struct {
	Step   string
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("paymob %s failed: status %d: %s", e.Step, e.Status, e.Body)
}
