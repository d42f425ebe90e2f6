// Package analysis sends accumulated journal text to the analysis service
// and normalizes its reply into the Analysis shape.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moodmate/internal/models"
)

// Client talks to the analysis endpoint (the application's own proxy in a
// full deployment).
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

type analyzeRequest struct {
	JournalText string `json:"journalText"`
}

// Serialize renders entries in the form the analysis prompt expects:
// "{day} - {time}: {text}" lines joined by blank lines.
func Serialize(entries []models.JournalEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s - %s: %s", e.DayKey, e.CreatedAt.Format("15:04:05"), e.Text))
	}
	return strings.Join(lines, "\n\n")
}

// BestEffort shapes a reply that did not decode as the Analysis contract
// into a usable result: the raw text becomes the summary and the remaining
// fields get generic placeholders. A malformed upstream reply therefore
// never blocks the user from seeing something.
func BestEffort(raw string) *models.Analysis {
	return &models.Analysis{
		Mood:        "Unstructured reply received",
		Emotions:    []string{"Analysis", "Reflection"},
		Summary:     raw,
		Suggestions: []string{"Keep writing in your journal", "Take care of yourself"},
	}
}

// Analyze sends the entries to the analysis service. Empty input fails
// locally with ErrNoEntries. Network and HTTP failures wrap ErrAnalysis; a
// 2xx reply that does not parse as the expected shape is returned via
// BestEffort instead of failing.
func (c *Client) Analyze(ctx context.Context, entries []models.JournalEntry) (*models.Analysis, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	body, err := json.Marshal(analyzeRequest{JournalText: Serialize(entries)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrAnalysis, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading reply: %v", ErrAnalysis, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty reply", ErrAnalysis)
	}

	var result models.Analysis
	if err := json.Unmarshal(raw, &result); err != nil || result.Mood == "" {
		return BestEffort(string(raw)), nil
	}
	return &result, nil
}
