package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// La capa de persistencia NUNCA reinterpreta estos errores en términos de
// negocio: un unique violation se reporta como ErrDuplicate, no como
// "el empleado ya existe" — esa traducción pertenece a la capa superior.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrConstraint    = errors.New("violación de constraint")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidStatus = errors.New("estado fuera del conjunto permitido")
)
