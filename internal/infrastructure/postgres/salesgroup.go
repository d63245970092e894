package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const salesGroupColumns = `id, organization_id, name, territory, created_at`

// AddSalesGroup persiste un grupo de ventas en la organización indicada.
// El nombre es único por organización.
func (s *Store) AddSalesGroup(ctx context.Context, orgID string, group *entity.SalesGroup) (*entity.SalesGroup, error) {
	const op = "AddSalesGroup"
	if orgID == "" {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	group.OrganizationID = orgID
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sales_groups (`+salesGroupColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		group.ID, group.OrganizationID, group.Name, group.Territory, group.CreatedAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return group, s.finish(op, nil)
}

// GetSalesGroupByID obtiene un grupo de ventas.
func (s *Store) GetSalesGroupByID(ctx context.Context, orgID, groupID string) (*entity.SalesGroup, error) {
	const op = "GetSalesGroupByID"
	g, err := scanSalesGroup(s.pool.QueryRow(ctx,
		`SELECT `+salesGroupColumns+` FROM sales_groups WHERE organization_id = $1 AND id = $2`,
		orgID, groupID))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return g, s.finish(op, nil)
}

// ListSalesGroupsByOrganization devuelve los grupos de la organización.
func (s *Store) ListSalesGroupsByOrganization(ctx context.Context, orgID string) ([]*entity.SalesGroup, error) {
	const op = "ListSalesGroupsByOrganization"
	rows, err := s.pool.Query(ctx,
		`SELECT `+salesGroupColumns+` FROM sales_groups WHERE organization_id = $1 ORDER BY name`,
		orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	defer rows.Close()

	var list []*entity.SalesGroup
	for rows.Next() {
		g, err := scanSalesGroup(rows)
		if err != nil {
			return nil, s.finish(op, err)
		}
		list = append(list, g)
	}
	return list, s.finish(op, rows.Err())
}

// UpdateSalesGroupByID aplica una actualización parcial.
func (s *Store) UpdateSalesGroupByID(ctx context.Context, orgID, groupID string, patch entity.SalesGroupPatch) (*entity.SalesGroup, error) {
	const op = "UpdateSalesGroupByID"
	set, args := newSetClause(orgID, groupID)
	addSet(set, "name", patch.Name)
	addSet(set, "territory", patch.Territory)
	if set.empty() {
		return s.GetSalesGroupByID(ctx, orgID, groupID)
	}
	query := fmt.Sprintf(`UPDATE sales_groups SET %s WHERE organization_id = $1 AND id = $2 RETURNING `+salesGroupColumns, set.sql())
	g, err := scanSalesGroup(s.pool.QueryRow(ctx, query, args()...))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return g, s.finish(op, nil)
}

// DeleteSalesGroupByID borra el grupo en una transacción: primero pone en
// null la referencia de los miembros, después borra la fila. Los empleados
// nunca se borran ni quedan huérfanos.
func (s *Store) DeleteSalesGroupByID(ctx context.Context, orgID, groupID string) (*entity.SalesGroup, error) {
	const op = "DeleteSalesGroupByID"
	var group *entity.SalesGroup
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		group, err = scanSalesGroup(tx.QueryRow(ctx,
			`SELECT `+salesGroupColumns+` FROM sales_groups WHERE organization_id = $1 AND id = $2`,
			orgID, groupID))
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE employees SET sales_group_id = NULL WHERE organization_id = $1 AND sales_group_id = $2`,
			orgID, groupID); err != nil {
			return fmt.Errorf("detach members: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM sales_groups WHERE organization_id = $1 AND id = $2`,
			orgID, groupID); err != nil {
			return fmt.Errorf("delete sales group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return group, s.finish(op, nil)
}

// SalesGroupDetail arma la vista agregada del grupo en un snapshot único:
// grupo + miembros + sus ventas + sus saldos de licencia. Una consulta por
// colección (las dependientes filtran por la lista de ids de miembros),
// nunca una consulta por miembro.
func (s *Store) SalesGroupDetail(ctx context.Context, orgID, groupID string) (*repository.SalesGroupDetailView, error) {
	const op = "SalesGroupDetail"
	view := &repository.SalesGroupDetailView{}

	err := s.withSnapshot(ctx, func(tx pgx.Tx) error {
		var err error
		view.Group, err = scanSalesGroup(tx.QueryRow(ctx,
			`SELECT `+salesGroupColumns+` FROM sales_groups WHERE organization_id = $1 AND id = $2`,
			orgID, groupID))
		if err != nil {
			return err
		}
		view.Members, err = queryEmployees(ctx, tx,
			`SELECT `+employeeColumns+` FROM employees WHERE organization_id = $1 AND sales_group_id = $2 ORDER BY registered_at`,
			orgID, groupID)
		if err != nil {
			return fmt.Errorf("detail members: %w", err)
		}
		if len(view.Members) == 0 {
			return nil
		}
		ids := memberIDs(view.Members)
		view.Sales, err = querySales(ctx, tx,
			`SELECT `+saleColumns+` FROM sales WHERE organization_id = $1 AND employee_id = ANY($2) ORDER BY date DESC`,
			orgID, ids)
		if err != nil {
			return fmt.Errorf("detail sales: %w", err)
		}
		rows, err := tx.Query(ctx,
			`SELECT employee_id, organization_id, taken, total FROM leave_balances WHERE organization_id = $1 AND employee_id = ANY($2)`,
			orgID, ids)
		if err != nil {
			return fmt.Errorf("detail leave balances: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var lb entity.LeaveBalance
			if err := rows.Scan(&lb.EmployeeID, &lb.OrganizationID, &lb.Taken, &lb.Total); err != nil {
				return err
			}
			view.LeaveBalances = append(view.LeaveBalances, &lb)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return view, s.finish(op, nil)
}

// memberIDs extrae los ids de los miembros, en orden, para filtrar las
// colecciones dependientes con una sola consulta batcheada por colección.
func memberIDs(members []*entity.Employee) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

func scanSalesGroup(row rowScanner) (*entity.SalesGroup, error) {
	var g entity.SalesGroup
	err := row.Scan(&g.ID, &g.OrganizationID, &g.Name, &g.Territory, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
