package helper_test

import (
	"net/url"
	"scoop/config"
	"scoop/helper"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "scoop"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "scoop"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	dsn, err := url.Parse(helper.ConnectionString(cfg))
	require.NoError(t, err)

	password, _ := dsn.User.Password()

	assert.Equal(t, "postgres", dsn.Scheme)
	assert.Equal(t, "localhost:5432", dsn.Host)
	assert.Equal(t, "/test_scoop", dsn.Path)
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "disable", dsn.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", dsn.Query().Get("x-migrations-table"))
}

func TestRunnerRejectsUnknownAction(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Host = "127.0.0.1"
	cfg.DB.Postgres.Write.Port = "1"

	err := helper.Runner(cfg, "sideways")
	assert.Error(t, err)
}
