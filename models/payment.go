package models

// PaymentConfirmation is the authoritative outcome of a payment attempt,
// derived from a verified provider callback or an order inquiry. The booking
// flow only advances on Success; a dismissed payment surface never produces
// one of these.
type PaymentConfirmation struct {
	OrderID       int64  `json:"orderId"`
	TransactionID int64  `json:"transactionId,omitempty"`
	AmountCents   int64  `json:"amountCents"`
	Currency      string `json:"currency"`
	Success       bool   `json:"success"`
}
