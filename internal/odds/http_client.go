package odds

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/stake-engine/internal/config"
	"github.com/yourusername/stake-engine/internal/models"
)

// HTTPConverter is a Converter backed by a remote odds-normalizer service.
// Requests are rate limited and retried; the staking engine itself stays pure
// and simply receives the converted number or the propagated error.
type HTTPConverter struct {
	client  *retryablehttp.Client
	limiter *rate.Limiter
	baseURL string
	apiKey  string
	logger  *logrus.Logger
}

// NewHTTPConverter creates a converter client for the configured service.
func NewHTTPConverter(cfg *config.ConverterConfig, logger *logrus.Logger) *HTTPConverter {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.Logger = nil

	return &HTTPConverter{
		client:  retryClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type convertRequest struct {
	Format string `json:"format"`
	Value  string `json:"value"`
	Target string `json:"target"`
}

type convertResponse struct {
	Result float64 `json:"result"`
}

// Convert calls the remote service's conversion endpoint.
func (c *HTTPConverter) Convert(price models.Price, target models.PriceFormat) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.client.HTTPClient.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limiter: %v", ErrConverterUnavailable, err)
	}

	body, err := json.Marshal(convertRequest{
		Format: string(price.Format),
		Value:  price.Value,
		Target: string(target),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal conversion request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/convert", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrConverterUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		payload, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: %s -> %s: %s", ErrInvalidPrice, price, target, string(payload))
	default:
		return 0, fmt.Errorf("conversion request failed with status %d", resp.StatusCode)
	}

	var converted convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&converted); err != nil {
		return 0, fmt.Errorf("failed to decode conversion response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"price":    price.String(),
		"target":   target,
		"result":   converted.Result,
		"duration": time.Since(start),
	}).Debug("Remote conversion completed")

	return converted.Result, nil
}

// HealthCheck verifies the remote normalizer is reachable.
func (c *HTTPConverter) HealthCheck(ctx context.Context) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConverterUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrConverterUnavailable, resp.StatusCode)
	}
	return nil
}
