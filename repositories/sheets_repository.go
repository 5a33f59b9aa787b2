package repositories

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

type SheetsRepository struct {
	credsPath string
	sheetName string
}

func NewSheetsRepository(credsPath, sheetName string) *SheetsRepository {
	if sheetName == "" {
		sheetName = "Fashion Data"
	}
	return &SheetsRepository{credsPath: credsPath, sheetName: sheetName}
}

// Write uploads a header row plus all products to the named spreadsheet,
// creating and sharing it when it does not exist yet, and returns its URL.
// Existing content is cleared first so repeated runs replace the data.
func (r *SheetsRepository) Write(ctx context.Context, products []domain.Product) (string, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(r.credsPath),
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveScope),
	}

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create sheets client: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create drive client: %w", err)
	}

	sheetID, err := r.findSpreadsheet(ctx, driveSvc)
	if err != nil {
		return "", err
	}
	if sheetID == "" {
		sheetID, err = r.createSpreadsheet(ctx, sheetsSvc, driveSvc)
		if err != nil {
			return "", err
		}
	}

	_, err = sheetsSvc.Spreadsheets.Values.Clear(sheetID, "Sheet1", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to clear spreadsheet %s: %w", sheetID, err)
	}

	body := &sheets.ValueRange{Values: sheetValues(products)}
	_, err = sheetsSvc.Spreadsheets.Values.Update(sheetID, "Sheet1!A1", body).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to update spreadsheet %s: %w", sheetID, err)
	}

	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", sheetID)
	log.Printf("Data uploaded to Google Sheets: %s", url)
	return url, nil
}

// sheetValues renders the header row followed by one row per product.
func sheetValues(products []domain.Product) [][]interface{} {
	values := make([][]interface{}, 0, len(products)+1)

	header := make([]interface{}, len(csvHeader))
	for i, col := range csvHeader {
		header[i] = col
	}
	values = append(values, header)

	for _, p := range products {
		values = append(values, []interface{}{
			p.Title,
			p.Price,
			p.Rating,
			p.Colors,
			p.Size,
			p.Gender,
			p.ScrapedAt.Format(timestampLayout),
		})
	}
	return values
}

func (r *SheetsRepository) findSpreadsheet(ctx context.Context, driveSvc *drive.Service) (string, error) {
	query := fmt.Sprintf("name='%s' and mimeType='%s'", r.sheetName, spreadsheetMimeType)
	list, err := driveSvc.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to search for spreadsheet %q: %w", r.sheetName, err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}

	log.Printf("Found existing spreadsheet %q (ID: %s)", r.sheetName, list.Files[0].Id)
	return list.Files[0].Id, nil
}

func (r *SheetsRepository) createSpreadsheet(ctx context.Context, sheetsSvc *sheets.Service, driveSvc *drive.Service) (string, error) {
	created, err := sheetsSvc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: r.sheetName},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet %q: %w", r.sheetName, err)
	}

	// Service-account files are private until shared
	_, err = driveSvc.Permissions.Create(created.SpreadsheetId, &drive.Permission{
		Type: "anyone",
		Role: "writer",
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to share spreadsheet %s: %w", created.SpreadsheetId, err)
	}

	log.Printf("Created spreadsheet %q (ID: %s)", r.sheetName, created.SpreadsheetId)
	return created.SpreadsheetId, nil
}
