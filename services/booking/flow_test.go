package booking

import (
	"context"
	"errors"
	"testing"

	"cleanhurghada/locale"
	"cleanhurghada/models"
	"cleanhurghada/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway lets the tests script the payment capability.
type fakeGateway struct {
	orderID     int64
	initiateErr error
	inquiry     *models.PaymentConfirmation
	inquiryErr  error
	calls       int
}

func (f *fakeGateway) InitiatePayment(ctx context.Context, amountEGP int, billing payment.BillingInfo) (*payment.Intent, error) {
	f.calls++
	if f.initiateErr != nil {
		return nil, f.initiateErr
	}
	return &payment.Intent{
		OrderID:     f.orderID,
		IframeURL:   "https://accept.paymob.com/api/acceptance/iframes/1?payment_token=tok",
		AmountCents: int64(amountEGP) * 100,
	}, nil
}

func (f *fakeGateway) InquireOrder(ctx context.Context, orderID int64) (*models.PaymentConfirmation, error) {
	if f.inquiryErr != nil {
		return nil, f.inquiryErr
	}
	return f.inquiry, nil
}

func validDetails() DetailsInput {
	return DetailsInput{
		Name:  "Mona Hassan",
		Phone: "+201009876543",
		Area:  "El Kawther",
		Date:  "2026-09-01",
	}
}

func TestNewFlowSeedsDraftFromQuote(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1200, Details: "2 Bedrooms - Standard", Area: "El Mamsha"})
	assert.Equal(t, models.StateCollectingDetails, flow.State)
	assert.Equal(t, 1200, flow.Draft.Price)
	assert.Equal(t, "El Mamsha", flow.Draft.Area)
	assert.Equal(t, models.CrewAny, flow.Draft.CleanerPreference)
}

func TestNewFlowOtherAreaForcesFreeText(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 700, Area: models.AreaOther})
	assert.Empty(t, flow.Draft.Area, "the Other sentinel must not be copied into the draft")

	in := validDetails()
	in.Area = ""
	err := SubmitDetails(flow, in)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "area", vErr.Field)
	assert.Equal(t, models.StateCollectingDetails, flow.State)
}

func TestSubmitDetailsRejectsMissingFields(t *testing.T) {
	cases := map[string]func(*DetailsInput){
		"name":  func(in *DetailsInput) { in.Name = "" },
		"phone": func(in *DetailsInput) { in.Phone = "" },
		"date":  func(in *DetailsInput) { in.Date = "" },
		"area":  func(in *DetailsInput) { in.Area = "" },
	}
	for field, blank := range cases {
		flow := NewFlow(models.Quote{Price: 1000})
		in := validDetails()
		blank(&in)

		err := SubmitDetails(flow, in)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "field %s", field)
		assert.Equal(t, field, vErr.Field)
		assert.Equal(t, models.StateCollectingDetails, flow.State, "flow must not advance")
	}
}

func TestSubmitDetailsDefaultsCrewPreference(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000})
	require.NoError(t, SubmitDetails(flow, validDetails()))
	assert.Equal(t, models.CrewAny, flow.Draft.CleanerPreference)
	assert.Equal(t, models.StateReviewingPayment, flow.State)
}

func TestBackPreservesEnteredData(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1500, Details: "Villa / 3+ Beds - Standard"})
	in := validDetails()
	in.CleanerPreference = models.CrewFemale
	require.NoError(t, SubmitDetails(flow, in))

	require.NoError(t, Back(flow))
	assert.Equal(t, models.StateCollectingDetails, flow.State)
	assert.Equal(t, "Mona Hassan", flow.Draft.Name)
	assert.Equal(t, models.CrewFemale, flow.Draft.CleanerPreference)
	assert.Equal(t, "2026-09-01", flow.Draft.Date)
}

func TestSummaryComputesFinalPrice(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000, Details: "1 Bedroom - Standard"})
	require.NoError(t, SubmitDetails(flow, validDetails()))

	summary, err := Summary(flow, locale.English)
	require.NoError(t, err)
	assert.Equal(t, 1150, summary.FinalPrice)
	assert.Equal(t, "EGP", summary.Currency)
	assert.Equal(t, "Any Professional Crew", summary.Crew)

	// Not available while collecting details.
	require.NoError(t, Back(flow))
	_, err = Summary(flow, locale.English)
	var tErr *TransitionError
	assert.ErrorAs(t, err, &tErr)
}

func TestBeginPaymentRequiresReviewState(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000})
	gw := &fakeGateway{orderID: 42}

	_, err := BeginPayment(context.Background(), flow, gw)
	var tErr *TransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Zero(t, gw.calls, "gateway must not be called outside review")
}

func TestBeginPaymentRecordsPendingOrder(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000})
	require.NoError(t, SubmitDetails(flow, validDetails()))

	gw := &fakeGateway{orderID: 42}
	intent, err := BeginPayment(context.Background(), flow, gw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), intent.OrderID)
	assert.Equal(t, int64(42), flow.PendingOrderID)
	assert.Equal(t, 1150, flow.PendingAmount)
	assert.Equal(t, models.StateReviewingPayment, flow.State, "payment initiation alone never succeeds the flow")
}

func TestBeginPaymentSurfacesGatewayFailure(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000})
	require.NoError(t, SubmitDetails(flow, validDetails()))

	gw := &fakeGateway{initiateErr: payment.ErrNotConfigured}
	_, err := BeginPayment(context.Background(), flow, gw)
	assert.ErrorIs(t, err, payment.ErrNotConfigured)
	assert.Equal(t, models.StateReviewingPayment, flow.State)
	assert.Zero(t, flow.PendingOrderID)
}

func TestConfirmPaymentOnlyOnVerifiedSuccess(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000})
	require.NoError(t, SubmitDetails(flow, validDetails()))
	_, err := BeginPayment(context.Background(), flow, &fakeGateway{orderID: 42})
	require.NoError(t, err)

	// The customer closing the payment window produces no confirmation at
	// all; the flow must stay in review.
	assert.Equal(t, models.StateReviewingPayment, flow.State)

	// Wrong order id.
	err = ConfirmPayment(flow, &models.PaymentConfirmation{OrderID: 7, AmountCents: 115000, Success: true})
	assert.ErrorIs(t, err, ErrConfirmationMismatch)
	assert.Equal(t, models.StateReviewingPayment, flow.State)

	// Wrong amount.
	err = ConfirmPayment(flow, &models.PaymentConfirmation{OrderID: 42, AmountCents: 100, Success: true})
	assert.ErrorIs(t, err, ErrConfirmationMismatch)

	// Provider says not successful.
	err = ConfirmPayment(flow, &models.PaymentConfirmation{OrderID: 42, AmountCents: 115000, Success: false})
	assert.ErrorIs(t, err, ErrPaymentNotConfirmed)
	assert.Equal(t, models.StateReviewingPayment, flow.State)

	// Verified success.
	err = ConfirmPayment(flow, &models.PaymentConfirmation{OrderID: 42, AmountCents: 115000, Success: true})
	require.NoError(t, err)
	assert.Equal(t, models.StateSucceeded, flow.State)
}

func TestConfirmPaymentWithoutPendingOrder(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000})
	require.NoError(t, SubmitDetails(flow, validDetails()))

	err := ConfirmPayment(flow, &models.PaymentConfirmation{OrderID: 42, Success: true})
	assert.ErrorIs(t, err, ErrNoPendingOrder)
}

func TestConfirmPaymentUnreachableFromCollectingDetails(t *testing.T) {
	flow := NewFlow(models.Quote{Price: 1000})
	err := ConfirmPayment(flow, &models.PaymentConfirmation{OrderID: 42, Success: true})
	var tErr *TransitionError
	assert.ErrorAs(t, err, &tErr)
}

func TestCrewLabelLocalized(t *testing.T) {
	assert.Equal(t, "Female Cleaners (Housekeeping)", CrewLabel(models.CrewFemale, locale.English))
	assert.Equal(t, "عمال نظافة (للأعمال الشاقة)", CrewLabel(models.CrewMale, locale.Arabic))
	assert.Equal(t, "Any Professional Crew", CrewLabel(models.CrewAny, locale.English))
}

func TestValidationErrorMessage(t *testing.T) {
	err := missing("phone")
	assert.Equal(t, "phone: is required", err.Error())
	assert.True(t, errors.As(err, new(*ValidationError)))
}
