package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vetly/config"
	"vetly/models"
	"vetly/utils"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"
)

// HTTPClient is the production routing repository over the routing API.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewHTTPClient builds a routing client from AppConfig.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		BaseURL: config.AppConfig.RoutingBaseURL,
		APIKey:  config.AppConfig.RoutingAPIKey,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) Suggest(ctx context.Context, requestID string, req models.RoutingRequest) (models.RoutingResult, error) {
	logger := utils.GetLogger()

	payload := struct {
		RequestID string `json:"routingRequestId"`
		models.RoutingRequest
	}{RequestID: requestID, RoutingRequest: req}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return models.RoutingResult{}, fmt.Errorf("routing: marshaling request: %w", err)
	}

	endpoint := c.BaseURL + "/v1/suggestions"
	var body []byte
	err = retry.Do(
		func() error {
			httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
			if err != nil {
				return err
			}
			httpReq.Header.Set("Content-Type", "application/json")
			httpReq.Header.Set("Accept", "application/json")
			if c.APIKey != "" {
				httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
			}

			resp, err := c.HTTP.Do(httpReq)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("HTTP %d from %s", resp.StatusCode, endpoint)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("HTTP %d from %s", resp.StatusCode, endpoint))
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.MaxDelay(15*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("retrying routing request",
				zap.Uint("attempt", n+1), zap.String("requestID", requestID), zap.Error(err))
		}),
	)
	if err != nil {
		return models.RoutingResult{}, fmt.Errorf("routing: submitting request %s: %w", requestID, err)
	}

	var result models.RoutingResult
	if err := json.Unmarshal(body, &result); err != nil {
		return models.RoutingResult{}, fmt.Errorf("routing: decoding result for %s: %w", requestID, err)
	}
	return result, nil
}
