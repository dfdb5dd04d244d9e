package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAssignsRowNumbers(t *testing.T) {
	rows := []RawRow{
		{"title": "First", "description": "", "likes": "3"},
		{"title": "Second", "description": "details", "likes": "0"},
	}

	got := Normalize(rows)

	require.Len(t, got, 2)
	assert.Equal(t, Suggestion{Row: 2, Title: "First", Likes: 3}, got[0])
	assert.Equal(t, Suggestion{Row: 3, Title: "Second", Description: "details"}, got[1])
}

func TestNormalizeSkipsBlankRows(t *testing.T) {
	rows := []RawRow{
		{"title": "", "description": "", "likes": "5"},
		{},
		{"title": "Kept", "description": ""},
	}

	got := Normalize(rows)

	require.Len(t, got, 1)
	assert.Equal(t, "Kept", got[0].Title)
	// The blank rows still occupy sheet rows, so the kept row keeps its
	// original position.
	assert.Equal(t, 4, got[0].Row)
}

func TestNormalizeKeepsRowWithOnlyDescription(t *testing.T) {
	got := Normalize([]RawRow{{"description": "just a note"}})

	require.Len(t, got, 1)
	assert.Equal(t, Suggestion{Row: 2, Description: "just a note"}, got[0])
}

func TestNormalizeCaseInsensitiveKeys(t *testing.T) {
	got := Normalize([]RawRow{
		{"Title": "Upper", "Description": "mixed", "Likes": "7"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, Suggestion{Row: 2, Title: "Upper", Description: "mixed", Likes: 7}, got[0])
}

func TestNormalizeCanonicalKeyWins(t *testing.T) {
	got := Normalize([]RawRow{
		{"title": "lower", "Title": "upper"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "lower", got[0].Title)
}

func TestParseLikesIsTotal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"garbage", "many", 0},
		{"float string", "3.5", 0},
		{"plain", "12", 12},
		{"padded", "  12  ", 12},
		{"integer value", 4, 4},
		// Negative strings parse; the counter is not clamped.
		{"negative", "-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLikes(tt.in))
		})
	}
}

func TestAsCardRenamesFields(t *testing.T) {
	s := Suggestion{Row: 5, Title: "A", Description: "B", Likes: 3}

	assert.Equal(t, Card{ID: 5, Title: "A", Subtitle: "B", Votes: 3}, s.AsCard())
}
