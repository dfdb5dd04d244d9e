package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"

	"sheetboard/internal/models"
)

// CSVSource reads the sheet through its public CSV export URL. The export is
// read-only, so Append and Increment always refuse.
type CSVSource struct {
	Client *http.Client
	URL    string
}

func NewCSVSource(url string) *CSVSource {
	return &CSVSource{
		Client: &http.Client{Timeout: upstreamTimeout},
		URL:    url,
	}
}

func (s *CSVSource) Fetch(ctx context.Context) ([]models.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV export request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch CSV export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("CSV export returned non-200 status: %s, body: %s", resp.Status, string(body))
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // exports pad trailing cells inconsistently

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV export: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	return rowsFromTable(records[0], records[1:]), nil
}

func (s *CSVSource) Append(ctx context.Context, title, description string) (int, error) {
	return 0, ErrReadOnly
}

func (s *CSVSource) Increment(ctx context.Context, row int) (int, error) {
	return 0, ErrReadOnly
}

func (s *CSVSource) ReadOnly() bool {
	return true
}
