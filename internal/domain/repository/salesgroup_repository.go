package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// SalesGroupRepository define el puerto de persistencia para SalesGroup (DIP).
type SalesGroupRepository interface {
	AddSalesGroup(ctx context.Context, orgID string, group *entity.SalesGroup) (*entity.SalesGroup, error)
	GetSalesGroupByID(ctx context.Context, orgID, groupID string) (*entity.SalesGroup, error)
	ListSalesGroupsByOrganization(ctx context.Context, orgID string) ([]*entity.SalesGroup, error)
	UpdateSalesGroupByID(ctx context.Context, orgID, groupID string, patch entity.SalesGroupPatch) (*entity.SalesGroup, error)
	// DeleteSalesGroupByID pone en null la referencia de los miembros y borra
	// el grupo, todo en una transacción. Los empleados nunca se borran.
	DeleteSalesGroupByID(ctx context.Context, orgID, groupID string) (*entity.SalesGroup, error)

	// SalesGroupDetail vista agregada consistente: grupo + miembros + sus
	// ventas + sus saldos de licencia, en una sola transacción y con una
	// consulta por colección (sin N+1).
	SalesGroupDetail(ctx context.Context, orgID, groupID string) (*SalesGroupDetailView, error)
}

// SalesGroupDetailView snapshot agregado de un grupo de ventas.
type SalesGroupDetailView struct {
	Group         *entity.SalesGroup
	Members       []*entity.Employee
	Sales         []*entity.Sale
	LeaveBalances []*entity.LeaveBalance
}
