package mysql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Códigos de error de MySQL relevantes para el mapeo a errores de dominio.
const (
	errDupEntry        = 1062 // ER_DUP_ENTRY
	errNoReferencedRow = 1452 // ER_NO_REFERENCED_ROW_2
	errRowIsReferenced = 1451 // ER_ROW_IS_REFERENCED_2
	errCheckViolated   = 3819 // ER_CHECK_CONSTRAINT_VIOLATED
)

// isUniqueViolation verifica si un error es una violación de índice único.
func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == errDupEntry
	}
	return false
}

// isConstraintViolation verifica violaciones de clave foránea o de CHECK.
func isConstraintViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errNoReferencedRow, errRowIsReferenced, errCheckViolated:
			return true
		}
	}
	return false
}

// inPlaceholders genera "?, ?, ..." para cláusulas IN con n elementos.
func inPlaceholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
