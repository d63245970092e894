package repository

import "context"

// Store es el contrato de acceso a datos completo: todo lo que el resto del
// sistema puede hacer contra el almacenamiento multi-tenant, independiente
// del motor relacional. Hay exactamente dos implementaciones (postgres y
// mysql) y solo una está activa por proceso, elegida al arrancar.
//
// Garantías del contrato:
//   - Todo método que toca más de una tabla corre dentro de una transacción
//     y retorna solo después del commit; nunca se expone estado intermedio.
//   - Todo WHERE sobre una tabla con tenant incluye el filtro por
//     organization_id, incluso cuando también se filtra por id local.
//   - "No encontrado" y "encontrado en otra organización" son el mismo
//     resultado (domain.ErrNotFound) para no filtrar existencia entre tenants.
type Store interface {
	OrganizationRepository
	EmployeeRepository
	SalesGroupRepository
	ItemRepository
	ClientRepository
	SaleRepository
	OrganizationPaymentRepository

	// Ping verifica la conexión subyacente.
	Ping(ctx context.Context) error
	// Close libera el pool de conexiones.
	Close()
}
