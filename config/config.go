package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

// Config holds the runtime settings shared by the whole pipeline run.
type Config struct {
	BaseURL   string
	SheetName string
}

// PostgresConfig mirrors the JSON configuration file consumed by the
// relational sink.
type PostgresConfig struct {
	Host      string `json:"host"`
	Database  string `json:"database"`
	User      string `json:"user"`
	Password  string `json:"password"`
	Port      string `json:"port"`
	TableName string `json:"table_name"`
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		BaseURL:   getEnv("BASE_URL", domain.BaseURL),
		SheetName: getEnv("SHEET_NAME", "Fashion Data"),
	}
}

// DefaultPostgres returns the connection settings used when no config file
// is supplied.
func DefaultPostgres() *PostgresConfig {
	return &PostgresConfig{
		Host:      "localhost",
		Database:  "fashion_db",
		User:      "postgres",
		Password:  "postgres",
		Port:      "5432",
		TableName: "fashion_products",
	}
}

// LoadPostgres reads the JSON config file at path. A missing path falls back
// to the defaults; fields absent from the file are filled in from them.
func LoadPostgres(path string) (*PostgresConfig, error) {
	cfg := DefaultPostgres()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Postgres config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read postgres config %s: %w", path, err)
	}

	var fileCfg PostgresConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse postgres config %s: %w", path, err)
	}

	if fileCfg.Host != "" {
		cfg.Host = fileCfg.Host
	}
	if fileCfg.Database != "" {
		cfg.Database = fileCfg.Database
	}
	if fileCfg.User != "" {
		cfg.User = fileCfg.User
	}
	if fileCfg.Password != "" {
		cfg.Password = fileCfg.Password
	}
	if fileCfg.Port != "" {
		cfg.Port = fileCfg.Port
	}
	if fileCfg.TableName != "" {
		cfg.TableName = fileCfg.TableName
	}
	return cfg, nil
}

// DSN builds the connection string for the target database.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Database, c.Port)
}

// MaintenanceDSN connects to the stock postgres database, used to create the
// target database when it does not exist yet.
func (c *PostgresConfig) MaintenanceDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Port)
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
