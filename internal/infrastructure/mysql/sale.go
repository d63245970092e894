package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const saleColumns = `id, organization_id, employee_id, client_id, client_payment_id, item_id, units, value, date`

// AddSale registra una venta. Las claves foráneas compuestas del esquema
// garantizan que empleado, cliente, pago y artículo pertenecen a la misma
// organización: una referencia cruzada falla con ErrConstraint.
func (s *Store) AddSale(ctx context.Context, orgID string, sale *entity.Sale) (*entity.Sale, error) {
	const op = "AddSale"
	if orgID == "" || sale.Units <= 0 {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	sale.OrganizationID = orgID
	if sale.Date.IsZero() {
		sale.Date = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sales (`+saleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sale.ID, sale.OrganizationID, sale.EmployeeID, sale.ClientID,
		sale.ClientPaymentID, sale.ItemID, sale.Units, sale.Value.InexactFloat64(), sale.Date,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return sale, s.finish(op, nil)
}

// GetSaleByID obtiene una venta.
func (s *Store) GetSaleByID(ctx context.Context, orgID, saleID string) (*entity.Sale, error) {
	const op = "GetSaleByID"
	sale, err := getSale(ctx, s.db, orgID, saleID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return sale, s.finish(op, nil)
}

// ListSalesByOrganization devuelve las ventas de la organización.
func (s *Store) ListSalesByOrganization(ctx context.Context, orgID string) ([]*entity.Sale, error) {
	const op = "ListSalesByOrganization"
	list, err := querySales(ctx, s.db,
		`SELECT `+saleColumns+` FROM sales WHERE organization_id = ? ORDER BY date DESC`,
		orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return list, s.finish(op, nil)
}

// ListSalesByEmployee devuelve las ventas de un empleado.
func (s *Store) ListSalesByEmployee(ctx context.Context, orgID, employeeID string) ([]*entity.Sale, error) {
	const op = "ListSalesByEmployee"
	list, err := querySales(ctx, s.db,
		`SELECT `+saleColumns+` FROM sales WHERE organization_id = ? AND employee_id = ? ORDER BY date DESC`,
		orgID, employeeID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return list, s.finish(op, nil)
}

// DeleteSaleByID borra una venta y devuelve la fila borrada.
func (s *Store) DeleteSaleByID(ctx context.Context, orgID, saleID string) (*entity.Sale, error) {
	const op = "DeleteSaleByID"
	var sale *entity.Sale
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		sale, err = getSale(ctx, tx, orgID, saleID)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`DELETE FROM sales WHERE organization_id = ? AND id = ?`,
			orgID, saleID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return sale, s.finish(op, nil)
}

func getSale(ctx context.Context, q querier, orgID, saleID string) (*entity.Sale, error) {
	return scanSale(q.QueryRowContext(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE organization_id = ? AND id = ?`,
		orgID, saleID))
}

func scanSale(row rowScanner) (*entity.Sale, error) {
	var v entity.Sale
	var value float64
	err := row.Scan(&v.ID, &v.OrganizationID, &v.EmployeeID, &v.ClientID,
		&v.ClientPaymentID, &v.ItemID, &v.Units, &value, &v.Date)
	if err != nil {
		return nil, err
	}
	v.Value = decimal.NewFromFloat(value)
	return &v, nil
}

func querySales(ctx context.Context, q querier, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		v, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
