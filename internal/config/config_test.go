package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 60, cfg.JWT.ExpiryMinutes)
	require.Equal(t, time.Hour, cfg.TokenExpiry())

	// Sin host no hay DSN: arranque in-memory.
	require.Empty(t, cfg.DB.Host)
	require.Empty(t, cfg.DSN())
}

func TestDSN_FullConnectionString(t *testing.T) {
	var cfg AppConfig
	cfg.DB.Host = "db.internal"
	cfg.DB.Port = 5433
	cfg.DB.User = "petalth"
	cfg.DB.Password = "s3cret"
	cfg.DB.Name = "petalth"
	cfg.DB.SSLMode = "require"

	require.Equal(t,
		"host=db.internal port=5433 user=petalth password=s3cret dbname=petalth sslmode=require",
		cfg.DSN())
}
