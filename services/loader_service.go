package services

import (
	"context"
	"fmt"
	"log"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

// Consumer-side sink interfaces
type CSVWriter interface {
	Write(path string, products []domain.Product) (string, error)
}

type DBWriter interface {
	Write(products []domain.Product) error
}

type SheetsWriter interface {
	Write(ctx context.Context, products []domain.Product) (string, error)
}

// SinkResult reports one sink's outcome for the run summary.
type SinkResult struct {
	Name     string
	Location string
	Err      error
}

type LoaderService struct {
	csvWriter    CSVWriter
	csvPath      string
	dbWriter     DBWriter
	sheetsWriter SheetsWriter
}

type LoaderOption func(*LoaderService)

func WithCSVWriter(w CSVWriter, path string) LoaderOption {
	return func(s *LoaderService) {
		s.csvWriter = w
		s.csvPath = path
	}
}

func WithDBWriter(w DBWriter) LoaderOption {
	return func(s *LoaderService) { s.dbWriter = w }
}

func WithSheetsWriter(w SheetsWriter) LoaderOption {
	return func(s *LoaderService) { s.sheetsWriter = w }
}

func NewLoaderService(opts ...LoaderOption) *LoaderService {
	s := &LoaderService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load writes the products to every configured sink independently. A failing
// sink is recorded in its result and never stops the remaining sinks; the
// only load-level error is having no sinks configured at all.
func (s *LoaderService) Load(ctx context.Context, products []domain.Product) ([]SinkResult, error) {
	if s.csvWriter == nil && s.dbWriter == nil && s.sheetsWriter == nil {
		return nil, fmt.Errorf("no sinks configured")
	}

	var results []SinkResult

	if s.csvWriter != nil {
		path, err := s.csvWriter.Write(s.csvPath, products)
		if err != nil {
			log.Printf("CSV sink failed: %v", err)
		} else {
			log.Printf("Data saved to CSV: %s", path)
		}
		results = append(results, SinkResult{Name: "csv", Location: path, Err: err})
	}

	if s.dbWriter != nil {
		err := s.dbWriter.Write(products)
		if err != nil {
			log.Printf("PostgreSQL sink failed: %v", err)
		} else {
			log.Printf("Data loaded to PostgreSQL")
		}
		results = append(results, SinkResult{Name: "postgres", Err: err})
	}

	if s.sheetsWriter != nil {
		url, err := s.sheetsWriter.Write(ctx, products)
		if err != nil {
			log.Printf("Google Sheets sink failed: %v", err)
		}
		results = append(results, SinkResult{Name: "sheets", Location: url, Err: err})
	}

	return results, nil
}
