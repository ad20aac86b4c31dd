// Package inference is an HTTP client for the usage-prediction
// microservice, which turns a home profile into an annual end-use
// energy breakdown.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
)

// Client is an HTTP client for calling the inference microservice.
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// New creates a new inference client.
func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("client", "inference").Logger(),
	}
}

// serviceResponse is the standard response format from the microservice.
type serviceResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

// PredictUsage posts the home profile and returns the predicted annual
// breakdown. The profile is sent as raw survey fields; the service owns
// feature encoding.
func (c *Client) PredictUsage(ctx context.Context, profile domain.HomeProfile) (domain.UsageBreakdown, error) {
	var breakdown domain.UsageBreakdown
	if err := c.post(ctx, "/predict", profile, &breakdown); err != nil {
		return domain.UsageBreakdown{}, err
	}
	if breakdown.Total <= 0 {
		return domain.UsageBreakdown{}, fmt.Errorf("inference service returned non-positive total: %f", breakdown.Total)
	}
	return breakdown, nil
}

// Healthy reports whether the service answers its health endpoint.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// post sends a POST request and decodes the wrapped data payload.
func (c *Client) post(ctx context.Context, endpoint string, request, target interface{}) error {
	url := c.baseURL + endpoint

	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	c.log.Debug().Str("endpoint", endpoint).Msg("Calling inference service")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference service returned status %d", httpResp.StatusCode)
	}

	var resp serviceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if !resp.Success {
		errorMsg := "unknown error"
		if resp.Error != nil {
			errorMsg = *resp.Error
		}
		return fmt.Errorf("prediction failed: %s", errorMsg)
	}

	if err := json.Unmarshal(resp.Data, target); err != nil {
		return fmt.Errorf("failed to parse prediction data: %w", err)
	}

	c.log.Debug().Str("endpoint", endpoint).Msg("Inference service call successful")
	return nil
}
