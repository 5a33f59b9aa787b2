package repositories

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wahyuabrory/fashion-data-ingestion/config"
	"github.com/wahyuabrory/fashion-data-ingestion/domain"
	"github.com/wahyuabrory/fashion-data-ingestion/models"
)

type DBRepository struct {
	configPath string
	batchSize  int
	open       func(dsn string) (*gorm.DB, error)
}

func NewDBRepository(configPath string, batchSize int) *DBRepository {
	if batchSize <= 0 {
		batchSize = 100 // Default
	}
	return &DBRepository{
		configPath: configPath,
		batchSize:  batchSize,
		open:       openPostgres,
	}
}

func openPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Write loads the config file, makes sure the database and table exist, then
// appends all rows. Config and connection errors surface to the caller so
// the loader can record them against this sink alone.
func (repo *DBRepository) Write(products []domain.Product) error {
	cfg, err := config.LoadPostgres(repo.configPath)
	if err != nil {
		return err
	}

	if err := repo.ensureDatabase(cfg); err != nil {
		return err
	}

	db, err := repo.open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", cfg.Database, err)
	}

	if err := db.Table(cfg.TableName).AutoMigrate(&models.FashionProduct{}); err != nil {
		return fmt.Errorf("failed to migrate table %s: %w", cfg.TableName, err)
	}

	return repo.insertRows(db, cfg.TableName, products)
}

func (repo *DBRepository) insertRows(db *gorm.DB, table string, products []domain.Product) error {
	if len(products) == 0 {
		log.Printf("No rows to insert into %s", table)
		return nil
	}

	rows := make([]models.FashionProduct, 0, len(products))
	for _, p := range products {
		rows = append(rows, models.FashionProduct{
			Title:     p.Title,
			Price:     p.Price,
			Rating:    p.Rating,
			Colors:    p.Colors,
			Size:      p.Size,
			Gender:    p.Gender,
			ScrapedAt: p.ScrapedAt,
		})
	}

	if err := db.Table(table).CreateInBatches(rows, repo.batchSize).Error; err != nil {
		return fmt.Errorf("failed to insert rows into %s: %w", table, err)
	}

	log.Printf("Inserted %d rows into %s", len(rows), table)
	return nil
}

// ensureDatabase creates the target database when it does not exist yet.
func (repo *DBRepository) ensureDatabase(cfg *config.PostgresConfig) error {
	db, err := repo.open(cfg.MaintenanceDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	var count int64
	err = db.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", cfg.Database).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", cfg.Database, err)
	}

	if count == 0 {
		log.Printf("Database %s does not exist, creating it", cfg.Database)
		if err := db.Exec(fmt.Sprintf(`CREATE DATABASE %q`, cfg.Database)).Error; err != nil {
			return fmt.Errorf("failed to create database %s: %w", cfg.Database, err)
		}
	}
	return nil
}
