package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Asegura que Store implementa el contrato completo.
var _ repository.Store = (*Store)(nil)

// Store implementación del contrato de acceso a datos sobre MySQL
// (database/sql + go-sql-driver). Mismo contrato que el backend PostgreSQL;
// difiere solo en el motor y en el mapeo de tipos: los montos se guardan como
// DOUBLE y se convierten vía decimal.NewFromFloat (diferencia de
// representación numérica documentada del contrato).
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// NewStore construye el backend MySQL con el pool y el logger inyectados.
func NewStore(db *sql.DB, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{db: db, log: log}
}

// Ping verifica la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close libera el pool.
func (s *Store) Close() {
	_ = s.db.Close()
}

// finish registra el resultado de la operación y traduce errores del driver
// a errores de dominio. El logging nunca altera el resultado.
func (s *Store) finish(op string, err error) error {
	defer s.log.Op(op, err)
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, sql.ErrNoRows):
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
	case isConstraintViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConstraint)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// withTx ejecuta fn dentro de una transacción con Commit/Rollback automático.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// withSnapshot igual que withTx pero con aislamiento REPEATABLE READ de solo
// lectura, para lecturas agregadas que deben ver un snapshot único.
func (s *Store) withSnapshot(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// querier abstrae *sql.DB y *sql.Tx para compartir helpers de consulta.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner lo cumplen *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// setClause arma el SET de un UPDATE parcial con placeholders ?. A diferencia
// del backend PostgreSQL los argumentos del SET van primero y los del WHERE
// al final, por el orden posicional de ?.
type setClause struct {
	cols []string
	args []any
}

func newSetClause() *setClause {
	return &setClause{}
}

// addSet agrega la columna solo si el campo del patch viene presente (no-nil).
func addSet[T any](sc *setClause, col string, v *T) {
	if v == nil {
		return
	}
	sc.cols = append(sc.cols, col+" = ?")
	sc.args = append(sc.args, *v)
}

// addNull fuerza la columna a NULL.
func (sc *setClause) addNull(col string) {
	sc.cols = append(sc.cols, col+" = NULL")
}

func (sc *setClause) empty() bool {
	return len(sc.cols) == 0
}

func (sc *setClause) sql() string {
	return strings.Join(sc.cols, ", ")
}

// args devuelve los argumentos del SET seguidos de los del WHERE.
func (sc *setClause) withWhere(whereArgs ...any) []any {
	return append(append([]any{}, sc.args...), whereArgs...)
}
