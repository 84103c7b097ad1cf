package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ErrEngineUnavailable is the single failure signal for the engine call.
// Network failures, non-2xx statuses and undecodable bodies all wrap it; the
// caller decides how to surface the failure and whether to retry.
var ErrEngineUnavailable = errors.New("recommendation engine unavailable")

// Client calls the external recommendation engine. It performs exactly one
// request per call: no retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the engine at baseURL (no trailing slash
// required). The timeout bounds the whole call including body read.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetOutfits posts the request to /recommendations/outfit and decodes the
// reply. The response is returned untransformed; interpreting outfit
// contents is the caller's job.
func (c *Client) GetOutfits(ctx context.Context, r Request) (*Response, error) {
	if r.Occasion == "" {
		r.Occasion = DefaultOccasion
	}

	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal outfit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendations/outfit", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build outfit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrEngineUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("engine returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrEngineUnavailable, resp.StatusCode)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrEngineUnavailable, err)
	}
	if out.Outfits == nil {
		out.Outfits = []Outfit{}
	}
	return &out, nil
}
