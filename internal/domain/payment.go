package domain

// SavedPaymentMethod is a customer-device payment method kept in the
// per-device state store, never in the relational schema.
type SavedPaymentMethod struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4,omitempty"`
	Brand     string `json:"brand,omitempty"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

const (
	PaymentTypeCard   = "card"
	PaymentTypeApple  = "apple"
	PaymentTypeGoogle = "google"
)
