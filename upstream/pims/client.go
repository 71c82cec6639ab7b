package pims

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"vetly/config"
	"vetly/models"
	"vetly/utils"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"
)

// HTTPClient is the production PIMS repository over the scheduling API.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewHTTPClient builds a PIMS client from AppConfig.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		BaseURL: config.AppConfig.PimsBaseURL,
		APIKey:  config.AppConfig.PimsAPIKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) DaySchedule(ctx context.Context, doctorPimsID, date string) (models.DayRecord, error) {
	var day models.DayRecord
	endpoint := fmt.Sprintf("%s/v1/doctors/%s/schedule?date=%s",
		c.BaseURL, url.PathEscape(doctorPimsID), url.QueryEscape(date))
	if err := c.getJSON(ctx, endpoint, &day); err != nil {
		return models.DayRecord{}, fmt.Errorf("pims: fetching day schedule for %s on %s: %w", doctorPimsID, date, err)
	}
	return day, nil
}

func (c *HTTPClient) DoctorName(ctx context.Context, doctorPimsID string) (string, error) {
	var doctor struct {
		PimsID string `json:"pimsId"`
		Name   string `json:"name"`
	}
	endpoint := fmt.Sprintf("%s/v1/doctors/%s", c.BaseURL, url.PathEscape(doctorPimsID))
	if err := c.getJSON(ctx, endpoint, &doctor); err != nil {
		return "", fmt.Errorf("pims: fetching doctor %s: %w", doctorPimsID, err)
	}
	return doctor.Name, nil
}

// getJSON performs a GET with retry/backoff and decodes the JSON body into out.
func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, out any) error {
	logger := utils.GetLogger()

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return err
			}
			req.Header.Set("Accept", "application/json")
			if c.APIKey != "" {
				req.Header.Set("Authorization", "Bearer "+c.APIKey)
			}

			resp, err := c.HTTP.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			// Retry on server errors and rate limiting.
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
		retry.Attempts(4),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(10*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("retrying PIMS fetch",
				zap.Uint("attempt", n+1), zap.String("endpoint", endpoint), zap.Error(err))
		}),
	)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}
