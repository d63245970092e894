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

const orgPaymentColumns = `id, organization_id, amount, status, paid_at`

// AddOrganizationPayment registra un pago de suscripción de la organización.
func (s *Store) AddOrganizationPayment(ctx context.Context, orgID string, payment *entity.OrganizationPayment) (*entity.OrganizationPayment, error) {
	const op = "AddOrganizationPayment"
	if orgID == "" {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.OrganizationID = orgID
	if payment.Status == "" {
		payment.Status = entity.PaymentPending
	}
	if !entity.ValidPaymentStatus(payment.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO organization_payments (`+orgPaymentColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
		payment.ID, payment.OrganizationID, payment.Amount.InexactFloat64(),
		payment.Status, payment.PaidAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return payment, s.finish(op, nil)
}

// ListOrganizationPaymentsByOrganization devuelve el historial de pagos de suscripción.
func (s *Store) ListOrganizationPaymentsByOrganization(ctx context.Context, orgID string) ([]*entity.OrganizationPayment, error) {
	const op = "ListOrganizationPaymentsByOrganization"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orgPaymentColumns+` FROM organization_payments WHERE organization_id = ? ORDER BY paid_at DESC`,
		orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	defer rows.Close()

	var list []*entity.OrganizationPayment
	for rows.Next() {
		p, err := scanOrgPayment(rows)
		if err != nil {
			return nil, s.finish(op, err)
		}
		list = append(list, p)
	}
	return list, s.finish(op, rows.Err())
}

// UpdateOrganizationPaymentStatus cambia el estado de un pago de suscripción.
// Es idempotente: fijar dos veces el mismo estado deja la misma fila.
func (s *Store) UpdateOrganizationPaymentStatus(ctx context.Context, orgID, paymentID, status string) (*entity.OrganizationPayment, error) {
	const op = "UpdateOrganizationPaymentStatus"
	if !entity.ValidPaymentStatus(status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	var p *entity.OrganizationPayment
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM organization_payments WHERE organization_id = ? AND id = ?`,
			orgID, paymentID).Scan(&one)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE organization_payments SET status = ? WHERE organization_id = ? AND id = ?`,
			status, orgID, paymentID); err != nil {
			return err
		}
		p, err = scanOrgPayment(tx.QueryRowContext(ctx,
			`SELECT `+orgPaymentColumns+` FROM organization_payments WHERE organization_id = ? AND id = ?`,
			orgID, paymentID))
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return p, s.finish(op, nil)
}

func scanOrgPayment(row rowScanner) (*entity.OrganizationPayment, error) {
	var p entity.OrganizationPayment
	var amount float64
	err := row.Scan(&p.ID, &p.OrganizationID, &amount, &p.Status, &p.PaidAt)
	if err != nil {
		return nil, err
	}
	p.Amount = decimal.NewFromFloat(amount)
	return &p, nil
}
