package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"webcal/internal/dto"
	"webcal/internal/models"
)

// TransportError means the store service could not be reached at all, as
// opposed to the service answering with a failure status.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// APIError carries a failure response from the store service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// EventInput is the canonical record the UI submits on save. Instants are
// always sent as ISO-8601 UTC strings.
type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AllDay      bool      `json:"all_day"`
	Color       string    `json:"color"`
}

// Range bounds a GET /events query on start_time, inclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the event store API. baseURL includes the /api
// prefix, e.g. "http://localhost:3000/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) GetEvents(ctx context.Context, rng *Range) ([]models.Event, error) {
	path := "/events"
	if rng != nil {
		q := url.Values{}
		q.Set("startDate", rng.Start.UTC().Format(time.RFC3339))
		q.Set("endDate", rng.End.UTC().Format(time.RFC3339))
		path += "?" + q.Encode()
	}

	var events []models.Event
	if err := c.do(ctx, http.MethodGet, path, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, in *EventInput) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPost, "/events", in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in *EventInput) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+id, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil)
}

func (c *Client) DeleteAllEvents(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/events", nil, nil)
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
