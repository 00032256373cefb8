package convex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a Convex deployment's public function API
// (POST <base>/api/query). Only queries are issued from this backend; the
// signer never writes state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// queryRequest is the wire form of a Convex function call.
type queryRequest struct {
	Path   string                 `json:"path"`
	Args   map[string]interface{} `json:"args"`
	Format string                 `json:"format"`
}

// queryResponse is the wire form of a Convex function result.
type queryResponse struct {
	Status       string          `json:"status"`
	Value        json.RawMessage `json:"value"`
	ErrorMessage string          `json:"errorMessage"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Query calls a Convex query function and decodes its value into out.
// A nil out discards the value. Convex returns JSON null for "not found";
// callers decode into pointer types to observe that.
func (c *Client) Query(ctx context.Context, fn string, args map[string]interface{}, out interface{}) error {
	if args == nil {
		args = map[string]interface{}{}
	}
	body, err := json.Marshal(queryRequest{Path: fn, Args: args, Format: "json"})
	if err != nil {
		return fmt.Errorf("marshal query %s: %w", fn, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/query", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build query %s: %w", fn, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query %s: %w", fn, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read query %s response: %w", fn, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("query %s: unexpected status %d", fn, resp.StatusCode)
	}

	var qr queryResponse
	if err := json.Unmarshal(raw, &qr); err != nil {
		return fmt.Errorf("decode query %s response: %w", fn, err)
	}
	if qr.Status != "success" {
		return fmt.Errorf("query %s failed: %s", fn, qr.ErrorMessage)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(qr.Value, out); err != nil {
		return fmt.Errorf("decode query %s value: %w", fn, err)
	}
	return nil
}

// Ping issues a trivial request to verify the deployment is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/version", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
