// Package oracle is the HTTP client for the authoritative line tax service.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fuelbooks/internal/config"
	"fuelbooks/internal/domain"
	"fuelbooks/internal/gst"
	"fuelbooks/internal/port"
)

const lineTaxPath = "/v1/line-tax"

// Client calls the tax service over JSON/HTTP.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient builds a Client from the oracle settings.
func NewClient(cfg *config.OracleConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.URL, "/") + lineTaxPath,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
	}
}

var _ port.TaxOracle = (*Client)(nil)

// CalculateLineTax posts the line and decodes the returned breakdown. Any
// transport failure or non-200 answer wraps domain.ErrOracleUnavailable.
func (c *Client) CalculateLineTax(ctx context.Context, in port.OracleRequest) (*gst.Breakdown, error) {
	bodyBytes, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling tax service: %v", domain.ErrOracleUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrOracleUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tax service status %d: %s",
			domain.ErrOracleUnavailable, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var b gst.Breakdown
	if err := json.Unmarshal(respBody, &b); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrOracleUnavailable, err)
	}
	return &b, nil
}
