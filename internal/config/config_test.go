package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "postgres",
		Database:        "drivent",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=drivent sslmode=disable",
		p.DSN())
	assert.Equal(t, 5*time.Minute, p.ConnMaxLifetime)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	cases := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"unknown": logger.InfoLevel,
	}

	for in, want := range cases {
		assert.Equal(t, want, LoggerConfig{Level: in}.LogLevel(), in)
	}
}
