package source

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"sheetboard/internal/models"
)

// Appended rows are written as [title, description, likes], so the like
// counter always lives in column C.
const likesColumn = "C"

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
var updatedRange = regexp.MustCompile(`![A-Z]+(\d+)`)

// SheetsSource talks to the spreadsheet directly through the Google Sheets
// API, authenticated as a service account.
type SheetsSource struct {
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewSheetsSource builds the API client from a service-account credentials
// file. The client is constructed once here and reused for the life of the
// process. spreadsheet may be a bare ID or a full docs.google.com URL.
func NewSheetsSource(ctx context.Context, credentialsFile, spreadsheet, worksheet string) (*SheetsSource, error) {
	jsonBytes, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account credentials: %w", err)
	}

	config, err := google.JWTConfigFromJSON(jsonBytes, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account credentials from JSON: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}

	return &SheetsSource{
		service:       srv,
		spreadsheetID: SpreadsheetID(spreadsheet),
		worksheet:     worksheet,
	}, nil
}

// SpreadsheetID extracts the spreadsheet ID from a docs.google.com URL, or
// returns the input unchanged if it is already a bare ID.
func SpreadsheetID(s string) string {
	if match := spreadsheetURL.FindStringSubmatch(s); len(match) == 2 {
		return match[1]
	}
	return s
}

func (s *SheetsSource) Fetch(ctx context.Context) ([]models.RawRow, error) {
	area := fmt.Sprintf("%s!A1:%s", s.worksheet, likesColumn)

	values, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read worksheet %s: %w", s.worksheet, err)
	}
	if len(values.Values) == 0 {
		return nil, nil
	}

	header := make([]string, len(values.Values[0]))
	for i, cell := range values.Values[0] {
		header[i] = fmt.Sprint(cell)
	}

	rows := make([]models.RawRow, 0, len(values.Values)-1)
	for _, record := range values.Values[1:] {
		row := models.RawRow{}
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *SheetsSource) Append(ctx context.Context, title, description string) (int, error) {
	area := fmt.Sprintf("%s!A:%s", s.worksheet, likesColumn)
	values := &sheets.ValueRange{
		Values: [][]any{{title, description, 0}},
	}

	response, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, area, values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("unable to append to worksheet %s: %w", s.worksheet, err)
	}

	if response.Updates != nil {
		if match := updatedRange.FindStringSubmatch(response.Updates.UpdatedRange); len(match) == 2 {
			row, _ := strconv.Atoi(match[1])
			return row, nil
		}
	}

	// The API accepted the append but did not report where it landed.
	return 0, nil
}

func (s *SheetsSource) Increment(ctx context.Context, row int) (int, error) {
	cell := fmt.Sprintf("%s!%s%d", s.worksheet, likesColumn, row)

	values, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, cell).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to read likes at row %d: %w", row, err)
	}

	// Read-increment-write: two concurrent likes on the same row can lose an
	// increment. The upstream sheet is the only serialization point.
	likes := 0
	if len(values.Values) > 0 && len(values.Values[0]) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(values.Values[0][0]))); err == nil {
			likes = n
		}
	}
	likes++

	update := &sheets.ValueRange{
		Values: [][]any{{likes}},
	}
	if _, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, cell, update).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return 0, fmt.Errorf("unable to update likes at row %d: %w", row, err)
	}

	return likes, nil
}

func (s *SheetsSource) ReadOnly() bool {
	return false
}
