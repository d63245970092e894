package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cuenta de un Client.
const (
	ClientActive      = "ACTIVE"
	ClientDeactivated = "DEACTIVATED"
	ClientUnverified  = "UNVERIFIED"
)

// ValidClientStatus informa si s es un estado de cliente válido.
func ValidClientStatus(s string) bool {
	return s == ClientActive || s == ClientDeactivated || s == ClientUnverified
}

// Client cliente final de una organización.
type Client struct {
	ID                string
	OrganizationID    string
	BillingCustomerID string
	Name              string
	NIC               string
	Email             string
	Phone             string
	Status            string // ACTIVE, DEACTIVATED, UNVERIFIED
	CreatedAt         time.Time
}

// ClientPatch actualización parcial de Client.
type ClientPatch struct {
	BillingCustomerID *string
	Name              *string
	NIC               *string
	Email             *string
	Phone             *string
	Status            *string
}

// ClientPayment pago de un cliente, ligado a la organización y al cliente
// mediante claves compuestas.
type ClientPayment struct {
	ID             string
	OrganizationID string
	ClientID       string
	Amount         decimal.Decimal
	Status         string // ver constantes Payment* en payment.go
	Date           time.Time
}

// ClientPaymentPatch actualización parcial de ClientPayment.
type ClientPaymentPatch struct {
	Amount *decimal.Decimal
	Status *string
}
