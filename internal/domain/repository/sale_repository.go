package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las referencias a empleado, cliente, pago y artículo se validan por las
// claves foráneas compuestas del esquema: insertar una venta con referencias
// de otra organización falla con ErrConstraint.
type SaleRepository interface {
	AddSale(ctx context.Context, orgID string, sale *entity.Sale) (*entity.Sale, error)
	GetSaleByID(ctx context.Context, orgID, saleID string) (*entity.Sale, error)
	ListSalesByOrganization(ctx context.Context, orgID string) ([]*entity.Sale, error)
	ListSalesByEmployee(ctx context.Context, orgID, employeeID string) ([]*entity.Sale, error)
	DeleteSaleByID(ctx context.Context, orgID, saleID string) (*entity.Sale, error)
}
