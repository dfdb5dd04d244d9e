package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sheetboard/internal/models"
)

// ScriptSource proxies reads and writes through a Google Apps Script web app
// deployed against the sheet. Reads are a plain GET returning a JSON array of
// row objects; writes POST an action payload.
type ScriptSource struct {
	Client *http.Client
	URL    string
}

func NewScriptSource(url string) *ScriptSource {
	return &ScriptSource{
		Client: &http.Client{Timeout: upstreamTimeout},
		URL:    url,
	}
}

func (s *ScriptSource) Fetch(ctx context.Context) ([]models.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create script request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("script returned non-200 status: %s, body: %s", resp.Status, string(body))
	}

	var rows []models.RawRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode script response: %w", err)
	}

	return rows, nil
}

func (s *ScriptSource) Append(ctx context.Context, title, description string) (int, error) {
	var result struct {
		Status string `json:"status"`
		Row    int    `json:"row"`
	}

	payload := map[string]any{
		"action":      "append",
		"title":       title,
		"description": description,
	}
	if err := s.post(ctx, payload, &result); err != nil {
		return 0, err
	}

	return result.Row, nil
}

func (s *ScriptSource) Increment(ctx context.Context, row int) (int, error) {
	var result struct {
		Row   int `json:"row"`
		Likes int `json:"likes"`
	}

	payload := map[string]any{
		"action": "like",
		"row":    row,
	}
	if err := s.post(ctx, payload, &result); err != nil {
		return 0, err
	}

	return result.Likes, nil
}

func (s *ScriptSource) ReadOnly() bool {
	return false
}

func (s *ScriptSource) post(ctx context.Context, payload map[string]any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal script payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create script request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send script request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("script returned non-200 status: %s, body: %s", resp.Status, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode script response: %w", err)
	}

	return nil
}
