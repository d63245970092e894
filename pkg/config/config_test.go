package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString_PrioridadDeDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		Engine:      EnginePostgres,
		DatabaseURL: "postgres://u:p@host:5432/db",
		Host:        "otro-host",
	}
	assert.Equal(t, "postgres://u:p@host:5432/db", cfg.ConnectionString())
}

func TestPostgresDSN_EscapaCaracteresEspeciales(t *testing.T) {
	cfg := DBConfig{
		Engine:   EnginePostgres,
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word",
		DBName:   "ventas",
		SSLMode:  "disable",
	}
	dsn := cfg.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword", "el password debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestMySQLDSN_FormatoDelDriver(t *testing.T) {
	cfg := DBConfig{
		Engine:   EngineMySQL,
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "secret",
		DBName:   "ventas",
	}
	assert.Equal(t,
		"root:secret@tcp(localhost:3306)/ventas?parseTime=true&charset=utf8mb4",
		cfg.ConnectionString())
}

func TestDefaultsPorMotor(t *testing.T) {
	assert.Equal(t, 5432, defaultPort(EnginePostgres))
	assert.Equal(t, 3306, defaultPort(EngineMySQL))
	assert.Equal(t, "postgres", defaultUser(EnginePostgres))
	assert.Equal(t, "root", defaultUser(EngineMySQL))
}

func TestHTTPAddr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
