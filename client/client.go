// Package client talks to the comanda HTTP API and keeps the fetched state a
// listing screen works against.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ray-remotestate/comandas/models"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type Option func(*Client)

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListComandas fetches every comanda from the backend. Filtering is the
// caller's business; the collection comes back in the order the backend
// returned it.
func (c *Client) ListComandas(ctx context.Context) ([]models.Comanda, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/comandas", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching comandas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("comanda list returned status %d", resp.StatusCode)
	}

	var comandas []models.Comanda
	if err := json.NewDecoder(resp.Body).Decode(&comandas); err != nil {
		return nil, fmt.Errorf("error decoding comanda list: %w", err)
	}
	return comandas, nil
}

// GetComanda fetches a single comanda, line items included.
func (c *Client) GetComanda(ctx context.Context, id int) (*models.Comanda, error) {
	url := fmt.Sprintf("%s/api/comandas/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching comanda %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("comanda %d not found", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("comanda %d returned status %d", id, resp.StatusCode)
	}

	var comanda models.Comanda
	if err := json.NewDecoder(resp.Body).Decode(&comanda); err != nil {
		return nil, fmt.Errorf("error decoding comanda %d: %w", id, err)
	}
	return &comanda, nil
}

// CreateComandaRequest is the creation payload. Numero stays a string on the
// wire; the backend parses and validates it.
type CreateComandaRequest struct {
	Numero string        `json:"numero"`
	Status models.Status `json:"status"`
}

// CreateComanda opens a new comanda with the given human-facing number and
// initial status.
func (c *Client) CreateComanda(ctx context.Context, numero string, status models.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}

	body, err := json.Marshal(CreateComandaRequest{Numero: numero, Status: status})
	if err != nil {
		return fmt.Errorf("error encoding create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/comandas", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error creating comanda: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("comanda creation returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
