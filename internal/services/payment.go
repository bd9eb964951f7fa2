package services

import "github.com/Karlyle101/tip-me-api/internal/models"

// PaymentCapture settles a pending tip with a payment provider. A real
// integration (Stripe, PayPal) replaces this one call site; the tip flow
// itself stays the same.
type PaymentCapture interface {
	Capture(tip *models.Tip) (models.TipStatus, error)
}

// AutoCapture completes every tip immediately. It stands in until a payment
// provider is wired up.
type AutoCapture struct{}

func (AutoCapture) Capture(_ *models.Tip) (models.TipStatus, error) {
	return models.TipCompleted, nil
}
