package postgres

import (
	"fmt"
	"strings"
)

// rowScanner lo cumplen pgx.Row y pgx.Rows; permite compartir los scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// setClause arma el SET de un UPDATE parcial con placeholders $n. Los
// argumentos del WHERE se reservan al inicio; cada columna agregada toma el
// siguiente placeholder. Los nombres de columna salen de listas fijas en el
// código, nunca de entrada del usuario: el SQL sigue siendo parametrizado.
type setClause struct {
	cols []string
	args []any
}

func newSetClause(whereArgs ...any) (*setClause, func() []any) {
	sc := &setClause{args: append([]any{}, whereArgs...)}
	return sc, func() []any { return sc.args }
}

// addSet agrega la columna solo si el campo del patch viene presente (no-nil).
func addSet[T any](sc *setClause, col string, v *T) {
	if v == nil {
		return
	}
	sc.args = append(sc.args, *v)
	sc.cols = append(sc.cols, fmt.Sprintf("%s = $%d", col, len(sc.args)))
}

// addNull fuerza la columna a NULL (para limpiezas explícitas como quitar el grupo).
func (sc *setClause) addNull(col string) {
	sc.cols = append(sc.cols, col+" = NULL")
}

func (sc *setClause) empty() bool {
	return len(sc.cols) == 0
}

func (sc *setClause) sql() string {
	return strings.Join(sc.cols, ", ")
}
