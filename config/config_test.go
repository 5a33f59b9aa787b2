package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("BASE_URL")
	os.Unsetenv("SHEET_NAME")

	cfg := Load()
	assert.Equal(t, "https://fashion-studio.dicoding.dev/", cfg.BaseURL)
	assert.Equal(t, "Fashion Data", cfg.SheetName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("BASE_URL", "http://localhost:8080/")
	os.Setenv("SHEET_NAME", "Test Sheet")
	defer os.Unsetenv("BASE_URL")
	defer os.Unsetenv("SHEET_NAME")

	cfg := Load()
	assert.Equal(t, "http://localhost:8080/", cfg.BaseURL)
	assert.Equal(t, "Test Sheet", cfg.SheetName)
}

func TestLoadPostgres_EmptyPath(t *testing.T) {
	cfg, err := LoadPostgres("")
	assert.NoError(t, err)
	assert.Equal(t, DefaultPostgres(), cfg)
}

func TestLoadPostgres_MissingFile(t *testing.T) {
	cfg, err := LoadPostgres(filepath.Join(t.TempDir(), "nope.json"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultPostgres(), cfg)
}

func TestLoadPostgres_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.json")
	content := `{"host": "db.internal", "database": "catalog", "port": "5433"}`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadPostgres(path)
	assert.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "catalog", cfg.Database)
	assert.Equal(t, "5433", cfg.Port)
	// Fields absent from the file keep their defaults
	assert.Equal(t, "postgres", cfg.User)
	assert.Equal(t, "fashion_products", cfg.TableName)
}

func TestLoadPostgres_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadPostgres(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse postgres config")
}

func TestDSN(t *testing.T) {
	cfg := DefaultPostgres()
	assert.Equal(t,
		"host=localhost user=postgres password=postgres dbname=fashion_db port=5432 sslmode=disable",
		cfg.DSN())
	assert.Equal(t,
		"host=localhost user=postgres password=postgres dbname=postgres port=5432 sslmode=disable",
		cfg.MaintenanceDSN())
}
