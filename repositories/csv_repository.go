package repositories

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"Title", "Price", "Rating", "Colors", "Size", "Gender", "ScrapedAt"}

type CSVRepository struct{}

func NewCSVRepository() *CSVRepository {
	return &CSVRepository{}
}

// Write overwrites path with a header row followed by one row per product,
// and returns the path written.
func (r *CSVRepository) Write(path string, products []domain.Product) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range products {
		record := []string{
			p.Title,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
			strconv.Itoa(p.Colors),
			p.Size,
			p.Gender,
			p.ScrapedAt.Format(timestampLayout),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV file %s: %w", path, err)
	}
	return path, nil
}
