// Package source provides the record-source strategies that back the
// suggestion board: a public CSV export, a Google Apps Script web app, and
// direct Google Sheets API access through a service account. All three are
// interchangeable behind the Source interface.
package source

import (
	"context"
	"errors"
	"time"

	"sheetboard/internal/models"
)

// upstreamTimeout bounds every call to a record source. No retries: a single
// timeout or upstream error is surfaced to the caller.
const upstreamTimeout = 15 * time.Second

// ErrReadOnly is returned by mutation calls on a source that cannot write
// (the public CSV export). The HTTP layer checks ReadOnly() first, so hitting
// this from a handler indicates a wiring bug.
var ErrReadOnly = errors.New("source is read-only")

type Source interface {
	// Fetch returns all data rows in sheet order, header excluded.
	Fetch(ctx context.Context) ([]models.RawRow, error)

	// Append adds a suggestion and returns the sheet row it landed on, or 0
	// if the upstream does not report the row.
	Append(ctx context.Context, title, description string) (int, error)

	// Increment adds one like to the given sheet row and returns the new
	// count.
	Increment(ctx context.Context, row int) (int, error)

	// ReadOnly reports whether Append and Increment are supported.
	ReadOnly() bool
}

// rowsFromTable maps a header row plus data rows to raw row maps, keyed by
// the header cell text. Short rows are padded by omission.
func rowsFromTable(header []string, data [][]string) []models.RawRow {
	rows := make([]models.RawRow, 0, len(data))
	for _, record := range data {
		row := models.RawRow{}
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
