package entity

import "time"

// Item artículo vendible de una organización con contador de stock.
type Item struct {
	ID             string
	OrganizationID string
	Name           string
	StockUnits     int64
	CreatedAt      time.Time
}

// ItemPatch actualización parcial de Item.
type ItemPatch struct {
	Name       *string
	StockUnits *int64
}
