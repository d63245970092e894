package entity

import "time"

// SalesGroup grupo de ventas de una organización. El nombre es único dentro
// de la organización. Al borrarlo, sus empleados quedan sin grupo (null),
// nunca se borran en cascada.
type SalesGroup struct {
	ID             string
	OrganizationID string
	Name           string
	Territory      string
	CreatedAt      time.Time
}

// SalesGroupPatch actualización parcial de SalesGroup.
type SalesGroupPatch struct {
	Name      *string
	Territory *string
}
