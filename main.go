package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wahyuabrory/fashion-data-ingestion/config"
	"github.com/wahyuabrory/fashion-data-ingestion/repositories"
	"github.com/wahyuabrory/fashion-data-ingestion/services"
)

var (
	csvOnly    bool
	outputPath string
	pgConfig   string
	gsCreds    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "fashion-data-ingestion",
		Short:        "Scrape the fashion catalog and load it into CSV, PostgreSQL and Google Sheets",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&csvOnly, "csv-only", false, "save to the CSV file only")
	rootCmd.Flags().StringVar(&outputPath, "output-path", "products.csv", "output path for the CSV file")
	rootCmd.Flags().StringVar(&pgConfig, "pg-config", "", "PostgreSQL configuration file path (JSON)")
	rootCmd.Flags().StringVar(&gsCreds, "gs-creds", "google-sheets-api.json", "Google Sheets credentials file path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	cfg := config.Load()
	ctx := context.Background()

	log.Printf("Starting pipeline run %s", runID)

	extractor := services.NewExtractorService(
		services.WithPageFetcher(repositories.NewPageFetcher()),
		services.WithBaseURL(cfg.BaseURL),
	)

	raw, err := extractor.Extract()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	products := services.NewTransformerService().Transform(raw)

	loaderOpts := []services.LoaderOption{
		services.WithCSVWriter(repositories.NewCSVRepository(), outputPath),
	}
	if !csvOnly {
		loaderOpts = append(loaderOpts,
			services.WithDBWriter(repositories.NewDBRepository(pgConfig, 100)),
			services.WithSheetsWriter(repositories.NewSheetsRepository(gsCreds, cfg.SheetName)),
		)
	}

	results, err := services.NewLoaderService(loaderOpts...).Load(ctx, products)
	if err != nil {
		return err
	}

	printSummary(runID, len(raw), len(products), results)

	succeeded := 0
	for _, r := range results {
		if r.Err == nil {
			succeeded++
		}
	}
	if succeeded == 0 {
		return fmt.Errorf("all %d sinks failed", len(results))
	}
	return nil
}

func printSummary(runID string, extracted, cleaned int, results []services.SinkResult) {
	fmt.Println("\n=== Data Ingestion Summary ===")
	fmt.Printf("Run ID: %s\n", runID)
	fmt.Printf("Rows extracted: %d\n", extracted)
	fmt.Printf("Rows cleaned: %d (dropped %d)\n", cleaned, extracted-cleaned)
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Printf("%s: FAILED (%v)\n", r.Name, r.Err)
		case r.Location != "":
			fmt.Printf("%s: OK -> %s\n", r.Name, r.Location)
		default:
			fmt.Printf("%s: OK\n", r.Name)
		}
	}
	fmt.Println("==============================")
}
