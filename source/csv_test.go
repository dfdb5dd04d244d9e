package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetboard/internal/models"
)

func TestCSVSourceFetch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Title,Description,Likes\nDark mode,please,3\nShorter row,\n"))
	}))
	defer upstream.Close()

	src := NewCSVSource(upstream.URL)
	rows, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.RawRow{"Title": "Dark mode", "Description": "please", "Likes": "3"}, rows[0])
	assert.Equal(t, models.RawRow{"Title": "Shorter row", "Description": ""}, rows[1])
}

func TestCSVSourceFetchEmptyBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer upstream.Close()

	src := NewCSVSource(upstream.URL)
	rows, err := src.Fetch(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVSourceFetchUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "export disabled", http.StatusForbidden)
	}))
	defer upstream.Close()

	src := NewCSVSource(upstream.URL)
	_, err := src.Fetch(context.Background())

	assert.Error(t, err)
}

func TestCSVSourceRefusesWrites(t *testing.T) {
	src := NewCSVSource("https://docs.google.com/spreadsheets/d/abc/export?format=csv")

	assert.True(t, src.ReadOnly())

	_, err := src.Append(context.Background(), "title", "description")
	assert.ErrorIs(t, err, ErrReadOnly)

	_, err = src.Increment(context.Background(), 2)
	assert.ErrorIs(t, err, ErrReadOnly)
}
