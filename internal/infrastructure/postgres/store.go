package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Asegura que Store implementa el contrato completo.
var _ repository.Store = (*Store)(nil)

// Store implementación del contrato de acceso a datos sobre PostgreSQL (pgx).
// Los métodos multi-tabla corren en una transacción; el resto son statements
// parametrizados sueltos. Todo WHERE sobre tabla con tenant filtra por
// organization_id.
type Store struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewStore construye el backend PostgreSQL con el pool y el logger inyectados.
func NewStore(pool *pgxpool.Pool, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{pool: pool, log: log}
}

// Ping verifica la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close libera el pool.
func (s *Store) Close() {
	s.pool.Close()
}

// finish registra el resultado de la operación y traduce errores del driver
// a errores de dominio. El logging nunca altera el resultado.
func (s *Store) finish(op string, err error) error {
	defer s.log.Op(op, err)
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConstraint),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidStatus):
		return err
	case isUniqueViolation(err):
		// No se envuelve el error del driver: su mensaje incluye el valor en
		// conflicto y no debe cruzar el límite del contrato.
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConstraint)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// withTx ejecuta fn dentro de una transacción con Commit/Rollback automático.
func (s *Store) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// withSnapshot igual que withTx pero con aislamiento REPEATABLE READ, para
// lecturas agregadas que deben ver un snapshot único.
func (s *Store) withSnapshot(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
