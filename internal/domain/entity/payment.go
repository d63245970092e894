package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago (tanto de cliente como de la propia organización).
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentVerified = "VERIFIED"
	PaymentRefunded = "REFUNDED"
)

// ValidPaymentStatus informa si s es un estado de pago válido.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentVerified, PaymentRefunded:
		return true
	}
	return false
}

// OrganizationPayment pago de suscripción de la propia organización
// (registrado por el webhook del proveedor de cobro, externo a este núcleo).
type OrganizationPayment struct {
	ID             string
	OrganizationID string
	Amount         decimal.Decimal
	Status         string // ver constantes Payment*
	PaidAt         time.Time
}
