// Package payment integrates the Paymob Accept gateway: order creation,
// payment-key issuance, the hosted iframe URL, and authoritative confirmation
// via the HMAC-signed transaction callback or an order inquiry. Paymob ships
// no Go SDK, so the wire calls go through a timed HTTP client directly.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cleanhurghada/models"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://accept.paymob.com"

// BillingInfo is the customer data Paymob requires on a payment key.
type BillingInfo struct {
	Name  string
	Phone string
	Area  string
}

// Intent is the result of a successfully initiated payment: the order to
// watch for confirmation and the iframe the customer pays in.
type Intent struct {
	OrderID     int64  `json:"orderId"`
	PaymentKey  string `json:"-"`
	IframeURL   string `json:"iframeUrl"`
	AmountCents int64  `json:"amountCents"`
}

// Gateway is the payment capability the booking flow calls.
type Gateway interface {
	InitiatePayment(ctx context.Context, amountEGP int, billing BillingInfo) (*Intent, error)
	InquireOrder(ctx context.Context, orderID int64) (*models.PaymentConfirmation, error)
}

type Client struct {
	apiKey        string
	integrationID string
	iframeID      string
	hmacSecret    string
	baseURL       string
	httpClient    *http.Client
	logger        *zap.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different Accept host (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func NewClient(apiKey, integrationID, iframeID, hmacSecret string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		integrationID: integrationID,
		iframeID:      iframeID,
		hmacSecret:    hmacSecret,
		baseURL:       defaultBaseURL,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) configured() bool {
	return c.apiKey != "" && c.integrationID != "" && c.iframeID != ""
}

// InitiatePayment runs the Accept sequence strictly in order: create the
// order, request a payment key, build the iframe URL. A failed step aborts
// the remaining ones.
func (c *Client) InitiatePayment(ctx context.Context, amountEGP int, billing BillingInfo) (*Intent, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	if amountEGP <= 0 {
		return nil, fmt.Errorf("invalid payment amount %d", amountEGP)
	}
	amountCents := int64(amountEGP) * 100

	orderID, err := c.createOrder(ctx, amountCents)
	if err != nil {
		return nil, err
	}
	c.logger.Info("paymob order created", zap.Int64("orderID", orderID), zap.Int64("amountCents", amountCents))

	token, err := c.paymentKey(ctx, orderID, amountCents, billing)
	if err != nil {
		return nil, err
	}

	return &Intent{
		OrderID:     orderID,
		PaymentKey:  token,
		IframeURL:   fmt.Sprintf("%s/api/acceptance/iframes/%s?payment_token=%s", c.baseURL, c.iframeID, token),
		AmountCents: amountCents,
	}, nil
}

func (c *Client) createOrder(ctx context.Context, amountCents int64) (int64, error) {
	payload := map[string]any{
		"auth_token":      c.apiKey,
		"delivery_needed": "false",
		"amount_cents":    amountCents,
		"currency":        "EGP",
		"items":           []any{},
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "order create", "/api/ecommerce/orders", payload, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) paymentKey(ctx context.Context, orderID, amountCents int64, billing BillingInfo) (string, error) {
	firstName := "Client"
	lastName := "User"
	if parts := strings.Fields(billing.Name); len(parts) > 0 {
		firstName = parts[0]
		if len(parts) > 1 {
			lastName = strings.Join(parts[1:], " ")
		}
	}
	city := billing.Area
	if city == "" {
		city = "Hurghada"
	}
	payload := map[string]any{
		"auth_token":   c.apiKey,
		"amount_cents": amountCents,
		"expiration":   3600,
		"order_id":     orderID,
		"billing_data": map[string]any{
			"email":        "user@example.com",
			"first_name":   firstName,
			"last_name":    lastName,
			"phone_number": billing.Phone,
			"city":         city,
			"country":      "EGY",
			"street":       "Hurghada",
		},
		"currency":       "EGP",
		"integration_id": c.integrationID,
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "payment key", "/api/acceptance/payment_keys", payload, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// InquireOrder asks Paymob for the transaction state of an order. Used as the
// polling fallback behind the client-facing status endpoint; the webhook
// callback remains the primary confirmation channel.
func (c *Client) InquireOrder(ctx context.Context, orderID int64) (*models.PaymentConfirmation, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	payload := map[string]any{
		"auth_token": c.apiKey,
		"order_id":   strconv.FormatInt(orderID, 10),
	}
	var resp struct {
		ID          int64  `json:"id"`
		AmountCents int64  `json:"amount_cents"`
		Currency    string `json:"currency"`
		Success     bool   `json:"success"`
		Order       struct {
			ID int64 `json:"id"`
		} `json:"order"`
	}
	if err := c.post(ctx, "order inquiry", "/api/ecommerce/orders/transaction_inquiry", payload, &resp); err != nil {
		return nil, err
	}
	return &models.PaymentConfirmation{
		OrderID:       resp.Order.ID,
		TransactionID: resp.ID,
		AmountCents:   resp.AmountCents,
		Currency:      resp.Currency,
		Success:       resp.Success,
	}, nil
}

func (c *Client) post(ctx context.Context, step, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", step, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", step, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paymob %s request: %w", step, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &ProviderError{Step: step, Status: resp.StatusCode, Body: string(raw)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", step, err)
	}
	return nil
}

// CallbackTransaction is the "obj" of Paymob's processed-transaction webhook.
// The fields below are exactly the set covered by the HMAC signature.
type CallbackTransaction struct {
	AmountCents          int64  `json:"amount_cents"`
	CreatedAt            string `json:"created_at"`
	Currency             string `json:"currency"`
	ErrorOccured         bool   `json:"error_occured"`
	HasParentTransaction bool   `json:"has_parent_transaction"`
	ID                   int64  `json:"id"`
	IntegrationID        int64  `json:"integration_id"`
	Is3DSecure           bool   `json:"is_3d_secure"`
	IsAuth               bool   `json:"is_auth"`
	IsCapture            bool   `json:"is_capture"`
	IsRefunded           bool   `json:"is_refunded"`
	IsStandalonePayment  bool   `json:"is_standalone_payment"`
	IsVoided             bool   `json:"is_voided"`
	Order                struct {
		ID int64 `json:"id"`
	} `json:"order"`
	Owner      int64 `json:"owner"`
	Pending    bool  `json:"pending"`
	SourceData struct {
		Pan     string `json:"pan"`
		SubType string `json:"sub_type"`
		Type    string `json:"type"`
	} `json:"source_data"`
	Success bool `json:"success"`
}

// VerifyCallback checks the webhook HMAC: SHA-512 over the signed fields
// concatenated in Paymob's documented (lexicographic) order.
func (c *Client) VerifyCallback(txn CallbackTransaction, receivedHMAC string) error {
	if c.hmacSecret == "" {
		return ErrNotConfigured
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(txn.AmountCents, 10))
	sb.WriteString(txn.CreatedAt)
	sb.WriteString(txn.Currency)
	sb.WriteString(strconv.FormatBool(txn.ErrorOccured))
	sb.WriteString(strconv.FormatBool(txn.HasParentTransaction))
	sb.WriteString(strconv.FormatInt(txn.ID, 10))
	sb.WriteString(strconv.FormatInt(txn.IntegrationID, 10))
	sb.WriteString(strconv.FormatBool(txn.Is3DSecure))
	sb.WriteString(strconv.FormatBool(txn.IsAuth))
	sb.WriteString(strconv.FormatBool(txn.IsCapture))
	sb.WriteString(strconv.FormatBool(txn.IsRefunded))
	sb.WriteString(strconv.FormatBool(txn.IsStandalonePayment))
	sb.WriteString(strconv.FormatBool(txn.IsVoided))
	sb.WriteString(strconv.FormatInt(txn.Order.ID, 10))
	sb.WriteString(strconv.FormatInt(txn.Owner, 10))
	sb.WriteString(strconv.FormatBool(txn.Pending))
	sb.WriteString(txn.SourceData.Pan)
	sb.WriteString(txn.SourceData.SubType)
	sb.WriteString(txn.SourceData.Type)
	sb.WriteString(strconv.FormatBool(txn.Success))

	mac := hmac.New(sha512.New, []byte(c.hmacSecret))
	mac.Write([]byte(sb.String()))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(receivedHMAC))) {
		return ErrBadSignature
	}
	return nil
}

// Confirmation converts a verified callback into the authoritative outcome.
func (txn CallbackTransaction) Confirmation() *models.PaymentConfirmation {
	return &models.PaymentConfirmation{
		OrderID:       txn.Order.ID,
		TransactionID: txn.ID,
		AmountCents:   txn.AmountCents,
		Currency:      txn.Currency,
		Success:       txn.Success && !txn.Pending && !txn.ErrorOccured,
	}
}
