package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient("apikey", "12345", "67890", "hmac-secret", zap.NewNop(), WithBaseURL(baseURL))
}

func TestInitiatePaymentRunsStepsInOrder(t *testing.T) {
	var steps []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		steps = append(steps, r.URL.Path)
		switch r.URL.Path {
		case "/api/ecommerce/orders":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "apikey", body["auth_token"])
			assert.Equal(t, float64(115000), body["amount_cents"])
			assert.Equal(t, "EGP", body["currency"])
			json.NewEncoder(w).Encode(map[string]any{"id": 42})
		case "/api/acceptance/payment_keys":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(42), body["order_id"])
			billing := body["billing_data"].(map[string]any)
			assert.Equal(t, "Mona", billing["first_name"])
			assert.Equal(t, "Hassan", billing["last_name"])
			assert.Equal(t, "El Kawther", billing["city"])
			assert.Equal(t, "EGY", billing["country"])
			json.NewEncoder(w).Encode(map[string]any{"token": "tok123"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	intent, err := client.InitiatePayment(context.Background(), 1150, BillingInfo{
		Name:  "Mona Hassan",
		Phone: "+201009876543",
		Area:  "El Kawther",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/ecommerce/orders", "/api/acceptance/payment_keys"}, steps)
	assert.Equal(t, int64(42), intent.OrderID)
	assert.Equal(t, int64(115000), intent.AmountCents)
	assert.Contains(t, intent.IframeURL, "/api/acceptance/iframes/67890?payment_token=tok123")
}

func TestInitiatePaymentAbortsAfterFailedStep(t *testing.T) {
	var keyRequests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ecommerce/orders":
			http.Error(w, `{"detail":"auth failed"}`, http.StatusUnauthorized)
		case "/api/acceptance/payment_keys":
			keyRequests++
		}
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	_, err := client.InitiatePayment(context.Background(), 1150, BillingInfo{Name: "A B"})

	var pErr *ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "order create", pErr.Step)
	assert.Equal(t, http.StatusUnauthorized, pErr.Status)
	assert.Zero(t, keyRequests, "payment key must not be requested after order creation fails")
}

func TestInitiatePaymentRequiresConfiguration(t *testing.T) {
	client := NewClient("", "", "", "", zap.NewNop())
	_, err := client.InitiatePayment(context.Background(), 1150, BillingInfo{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestInitiatePaymentRejectsNonPositiveAmount(t *testing.T) {
	client := testClient(t, "http://localhost:0")
	_, err := client.InitiatePayment(context.Background(), 0, BillingInfo{})
	assert.Error(t, err)
}

func TestInquireOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ecommerce/orders/transaction_inquiry", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":           900,
			"amount_cents": 115000,
			"currency":     "EGP",
			"success":      true,
			"order":        map[string]any{"id": 42},
		})
	}))
	defer srv.Close()

	client := testClient(t, srv.URL)
	conf, err := client.InquireOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), conf.OrderID)
	assert.Equal(t, int64(900), conf.TransactionID)
	assert.True(t, conf.Success)
}

func signedCallback(t *testing.T, secret string, txn CallbackTransaction) string {
	t.Helper()
	fields := []string{
		"115000", txn.CreatedAt, "EGP", "false", "false", "900", "12345",
		"false", "false", "false", "false", "true", "false", "42", "7",
		"false", "1234", "VISA", "card", "true",
	}
	var concat string
	for _, f := range fields {
		concat += f
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(concat))
	return hex.EncodeToString(mac.Sum(nil))
}

func sampleTransaction() CallbackTransaction {
	txn := CallbackTransaction{
		AmountCents:         115000,
		CreatedAt:           "2026-08-29T10:00:00",
		Currency:            "EGP",
		ID:                  900,
		IntegrationID:       12345,
		IsStandalonePayment: true,
		Owner:               7,
		Success:             true,
	}
	txn.Order.ID = 42
	txn.SourceData.Pan = "1234"
	txn.SourceData.SubType = "VISA"
	txn.SourceData.Type = "card"
	return txn
}

func TestVerifyCallback(t *testing.T) {
	client := testClient(t, "http://localhost:0")
	txn := sampleTransaction()

	require.NoError(t, client.VerifyCallback(txn, signedCallback(t, "hmac-secret", txn)))

	// Tampered amount breaks the signature.
	tampered := txn
	tampered.AmountCents = 1
	assert.ErrorIs(t, client.VerifyCallback(tampered, signedCallback(t, "hmac-secret", txn)), ErrBadSignature)

	// Wrong secret.
	assert.ErrorIs(t, client.VerifyCallback(txn, signedCallback(t, "other", txn)), ErrBadSignature)

	// No secret configured.
	bare := NewClient("k", "i", "f", "", zap.NewNop())
	assert.ErrorIs(t, bare.VerifyCallback(txn, signedCallback(t, "hmac-secret", txn)), ErrNotConfigured)
}

func TestCallbackConfirmation(t *testing.T) {
	txn := sampleTransaction()
	conf := txn.Confirmation()
	assert.True(t, conf.Success)
	assert.Equal(t, int64(42), conf.OrderID)

	pending := txn
	pending.Pending = true
	assert.False(t, pending.Confirmation().Success, "a pending transaction is not a success")

	failed := txn
	failed.Success = false
	assert.False(t, failed.Confirmation().Success)
}
