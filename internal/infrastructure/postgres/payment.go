package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
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
	_, err := s.pool.Exec(ctx, `
		INSERT INTO organization_payments (`+orgPaymentColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		payment.ID, payment.OrganizationID, payment.Amount, payment.Status, payment.PaidAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return payment, s.finish(op, nil)
}

// ListOrganizationPaymentsByOrganization devuelve el historial de pagos de suscripción.
func (s *Store) ListOrganizationPaymentsByOrganization(ctx context.Context, orgID string) ([]*entity.OrganizationPayment, error) {
	const op = "ListOrganizationPaymentsByOrganization"
	rows, err := s.pool.Query(ctx,
		`SELECT `+orgPaymentColumns+` FROM organization_payments WHERE organization_id = $1 ORDER BY paid_at DESC`,
		orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	defer rows.Close()

	var list []*entity.OrganizationPayment
	for rows.Next() {
		var p entity.OrganizationPayment
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Amount, &p.Status, &p.PaidAt); err != nil {
			return nil, s.finish(op, err)
		}
		list = append(list, &p)
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
	var p entity.OrganizationPayment
	err := s.pool.QueryRow(ctx, `
		UPDATE organization_payments SET status = $3
		WHERE organization_id = $1 AND id = $2
		RETURNING `+orgPaymentColumns,
		orgID, paymentID, status,
	).Scan(&p.ID, &p.OrganizationID, &p.Amount, &p.Status, &p.PaidAt)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return &p, s.finish(op, nil)
}
