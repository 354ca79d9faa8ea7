// Package recordstore writes translation records to an external hosted
// tabular store (Airtable-style API): one bearer-authenticated POST per
// record, status-only result. The store owns durability; callers treat the
// write as best-effort.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"candor/internal/model"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// createRequest is the minimal request shape for the record creation endpoint.
type createRequest struct {
	Records []recordPayload `json:"records"`
}

type recordPayload struct {
	Fields recordFields `json:"fields"`
}

type recordFields struct {
	Phrase      string `json:"Phrase"`
	Translation string `json:"Translation"`
	Model       string `json:"Model"`
	Source      string `json:"Source"`
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("recordstore: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Client is a focused client for appending rows to one table.
type Client struct {
	baseURL    string
	token      string
	baseID     string
	table      string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a record store client for one base/table pair.
func NewClient(token, baseID, table string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("recordstore: token must not be empty")
	}
	if baseID == "" {
		return nil, errors.New("recordstore: base ID must not be empty")
	}
	if table == "" {
		return nil, errors.New("recordstore: table must not be empty")
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		baseID:     baseID,
		table:      table,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) createURL() string {
	base := strings.TrimRight(c.baseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base + "/" + c.baseID + "/" + url.PathEscape(c.table)
}

// CreateRecord appends one record. Only the response status is consulted;
// a non-2xx status is returned as *HTTPStatusError with a bounded body.
func (c *Client) CreateRecord(ctx context.Context, record model.TranslationRecord) error {
	body, err := json.Marshal(createRequest{
		Records: []recordPayload{{
			Fields: recordFields{
				Phrase:      record.Phrase,
				Translation: record.Translation,
				Model:       record.Model,
				Source:      record.Source,
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("recordstore: marshal request: %w", err)
	}

	reqURL := c.createURL()

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if reqErr != nil {
		return fmt.Errorf("recordstore: create request: %w", reqErr)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("recordstore: request failed: %w", doErr)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        reqURL,
			Body:       string(buf),
		}
	}
	return nil
}
