package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sales_groups (`+salesGroupColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
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
	g, err := getSalesGroup(ctx, s.db, orgID, groupID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return g, s.finish(op, nil)
}

// ListSalesGroupsByOrganization devuelve los grupos de la organización.
func (s *Store) ListSalesGroupsByOrganization(ctx context.Context, orgID string) ([]*entity.SalesGroup, error) {
	const op = "ListSalesGroupsByOrganization"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+salesGroupColumns+` FROM sales_groups WHERE organization_id = ? ORDER BY name`,
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

// UpdateSalesGroupByID aplica una actualización parcial (update + re-lectura en una tx).
func (s *Store) UpdateSalesGroupByID(ctx context.Context, orgID, groupID string, patch entity.SalesGroupPatch) (*entity.SalesGroup, error) {
	const op = "UpdateSalesGroupByID"
	set := newSetClause()
	addSet(set, "name", patch.Name)
	addSet(set, "territory", patch.Territory)
	if set.empty() {
		return s.GetSalesGroupByID(ctx, orgID, groupID)
	}
	var g *entity.SalesGroup
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE sales_groups SET %s WHERE organization_id = ? AND id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID, groupID)...); err != nil {
			return err
		}
		var err error
		g, err = getSalesGroup(ctx, tx, orgID, groupID)
		return err
	})
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
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		group, err = getSalesGroup(ctx, tx, orgID, groupID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE employees SET sales_group_id = NULL WHERE organization_id = ? AND sales_group_id = ?`,
			orgID, groupID); err != nil {
			return fmt.Errorf("detach members: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM sales_groups WHERE organization_id = ? AND id = ?`,
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
// colección (las dependientes filtran con IN sobre los ids de miembros),
// nunca una consulta por miembro.
func (s *Store) SalesGroupDetail(ctx context.Context, orgID, groupID string) (*repository.SalesGroupDetailView, error) {
	const op = "SalesGroupDetail"
	view := &repository.SalesGroupDetailView{}

	err := s.withSnapshot(ctx, func(tx *sql.Tx) error {
		var err error
		view.Group, err = getSalesGroup(ctx, tx, orgID, groupID)
		if err != nil {
			return err
		}
		view.Members, err = queryEmployees(ctx, tx,
			`SELECT `+employeeColumns+` FROM employees WHERE organization_id = ? AND sales_group_id = ? ORDER BY registered_at`,
			orgID, groupID)
		if err != nil {
			return fmt.Errorf("detail members: %w", err)
		}
		if len(view.Members) == 0 {
			return nil
		}
		args := memberArgs(orgID, view.Members)
		in := inPlaceholders(len(view.Members))
		view.Sales, err = querySales(ctx, tx,
			`SELECT `+saleColumns+` FROM sales WHERE organization_id = ? AND employee_id IN (`+in+`) ORDER BY date DESC`,
			args...)
		if err != nil {
			return fmt.Errorf("detail sales: %w", err)
		}
		rows, err := tx.QueryContext(ctx,
			`SELECT employee_id, organization_id, taken, total FROM leave_balances WHERE organization_id = ? AND employee_id IN (`+in+`)`,
			args...)
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

// memberArgs arma los argumentos (organización + ids de miembros, en orden)
// de las consultas IN batcheadas de la vista agregada.
func memberArgs(orgID string, members []*entity.Employee) []any {
	args := make([]any, 0, len(members)+1)
	args = append(args, orgID)
	for _, m := range members {
		args = append(args, m.ID)
	}
	return args
}

func getSalesGroup(ctx context.Context, q querier, orgID, groupID string) (*entity.SalesGroup, error) {
	return scanSalesGroup(q.QueryRowContext(ctx,
		`SELECT `+salesGroupColumns+` FROM sales_groups WHERE organization_id = ? AND id = ?`,
		orgID, groupID))
}

func scanSalesGroup(row rowScanner) (*entity.SalesGroup, error) {
	var g entity.SalesGroup
	err := row.Scan(&g.ID, &g.OrganizationID, &g.Name, &g.Territory, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
