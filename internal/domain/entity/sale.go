package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta realizada por un empleado a un cliente. Todas las referencias
// (empleado, cliente, pago, artículo) son claves compuestas con la
// organización: no puede existir una venta que cruce tenants.
type Sale struct {
	ID              string
	OrganizationID  string
	EmployeeID      string
	ClientID        string
	ClientPaymentID string
	ItemID          string
	Units           int64
	Value           decimal.Decimal // unidades * precio, calculado al registrar
	Date            time.Time
}
