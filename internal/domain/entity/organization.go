package entity

import "time"

// Estados válidos de una Organization (tenant raíz). Conjunto cerrado:
// cualquier otro valor se rechaza en el borde de escritura.
const (
	OrgStatusActive      = "ACTIVE"
	OrgStatusDeactivated = "DEACTIVATED"
	OrgStatusSuspended   = "SUSPENDED"
	OrgStatusTrial       = "TRIAL"
)

// Estados de suscripción de la organización.
const (
	SubscriptionValid   = "VALID"
	SubscriptionExpired = "EXPIRED"
)

// Organization representa el tenant raíz del sistema. Nunca se borra
// físicamente: la desactivación es una transición de estado.
type Organization struct {
	ID                 string
	AdminID            string
	BillingCustomerID  string // id del cliente en el proveedor de cobro externo
	Name               string
	Status             string // ver constantes OrgStatus*
	SubscriptionStatus string // VALID, EXPIRED
	SubscriptionEndsAt *time.Time
	RegisteredAt       time.Time
}

// OrganizationPatch actualización parcial: solo los campos no-nil se escriben.
// Campo ausente (nil) ≠ campo puesto en null.
type OrganizationPatch struct {
	AdminID            *string
	BillingCustomerID  *string
	Name               *string
	Status             *string
	SubscriptionStatus *string
	SubscriptionEndsAt *time.Time
}

// ValidOrganizationStatus informa si s pertenece al conjunto cerrado de estados.
func ValidOrganizationStatus(s string) bool {
	switch s {
	case OrgStatusActive, OrgStatusDeactivated, OrgStatusSuspended, OrgStatusTrial:
		return true
	}
	return false
}

// ValidSubscriptionStatus informa si s es un estado de suscripción válido.
func ValidSubscriptionStatus(s string) bool {
	return s == SubscriptionValid || s == SubscriptionExpired
}
