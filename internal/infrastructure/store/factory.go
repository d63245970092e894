// Package store elige e instancia el backend de persistencia activo.
// Exactamente un motor por proceso: la decisión se toma una sola vez al
// arrancar, a partir de la configuración, y el resto del sistema solo ve el
// contrato repository.Store.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/mysql"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// ErrUnknownEngine motor no reconocido en la configuración. Es un error fatal
// de arranque: no hay fallback a un motor por defecto.
var ErrUnknownEngine = errors.New("motor de base de datos desconocido")

// New construye el backend indicado por cfg.Engine y verifica la conexión.
// Solo se instancia el motor elegido; el otro nunca se toca.
func New(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (repository.Store, error) {
	switch cfg.Engine {
	case config.EnginePostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("backend postgres: %w", err)
		}
		return postgres.NewStore(pool, log), nil
	case config.EngineMySQL:
		db, err := mysql.NewDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("backend mysql: %w", err)
		}
		return mysql.NewStore(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Engine)
	}
}
