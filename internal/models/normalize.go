package models

import (
	"fmt"
	"strconv"
	"strings"
)

// RawRow is one spreadsheet row as delivered by a record source. Keys vary in
// case depending on how the sheet header is written ("Title" vs "title") and
// values may be strings, numbers or nil.
type RawRow map[string]any

// field returns the value for key, trying the exact lowercase key first and
// falling back to a case-insensitive match.
func (r RawRow) field(key string) any {
	if v, ok := r[key]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

func (r RawRow) text(key string) string {
	v := r.field(key)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// parseLikes converts an arbitrary cell value to a like count. It never
// fails: anything that does not parse as an integer counts as 0. Negative
// numeric strings parse to negative integers and are passed through
// unclamped.
func parseLikes(v any) int {
	if v == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(v)))
	if err != nil {
		return 0
	}
	return n
}

// Normalize converts raw rows into canonical Suggestions, preserving input
// order. The row identifier is the 1-based data-row position offset by the
// header, so the first data row is row 2. Rows with neither a title nor a
// description are blank sheet rows and are skipped.
func Normalize(rows []RawRow) []Suggestion {
	out := make([]Suggestion, 0, len(rows))
	for i, raw := range rows {
		title := raw.text("title")
		description := raw.text("description")
		if title == "" && description == "" {
			continue
		}
		out = append(out, Suggestion{
			Row:         i + FirstDataRow,
			Title:       title,
			Description: description,
			Likes:       parseLikes(raw.field("likes")),
		})
	}
	return out
}
