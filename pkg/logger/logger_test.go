package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOp_NuncaFalla(t *testing.T) {
	log := Nop()

	// El logging es un canal lateral: con o sin error, Op no debe entrar en
	// pánico ni alterar nada.
	assert.NotPanics(t, func() { log.Op("AddSale", nil) })
	assert.NotPanics(t, func() { log.Op("AddSale", errors.New("boom")) })
}

func TestLogAndReturn_DevuelveElValorIntacto(t *testing.T) {
	log := Nop()

	type resultado struct{ N int }
	in := &resultado{N: 7}

	out := LogAndReturn(log, "resultado", in)
	require.Same(t, in, out)

	assert.Equal(t, 42, LogAndReturn(log, "entero", 42))
}

func TestNop_DescartaTodo(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Info().Str("k", "v").Msg("descartado")
		log.Error().Msg("descartado")
	})
}
