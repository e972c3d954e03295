package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"alabraar/models"
)

// PaymentHandler creates payment intents for bookings. The frontend settles
// the intent with the provider; SettlePayment records the outcome.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler backs PaymentHandler with Stripe PaymentIntents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler constructs a StripePaymentHandler. stripe.Key must
// already be set.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    models.PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"bookingId": req.BookingID,
			"userId":    req.UserID,
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("stripe payment intent failed",
			zap.String("bookingID", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("payment intent failed: %w", err)
	}

	inv.PaymentIntentID = pi.ID
	inv.ClientSecret = pi.ClientSecret

	h.logger.Info("payment intent created",
		zap.String("invoice", inv.InvoiceID), zap.String("bookingID", req.BookingID))
	return inv, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	if req.BookingID == "" {
		return errors.New("missing booking ID")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	return nil
}
