package store

import (
	"context"
	"testing"

	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MotorDesconocidoEsFatal(t *testing.T) {
	// Un motor no reconocido no hace fallback a un default: falla el arranque.
	_, err := New(context.Background(), config.DBConfig{Engine: "oracle"}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEngine)
	assert.Contains(t, err.Error(), "oracle")
}

func TestNew_MotorVacioEsFatal(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownEngine)
}
