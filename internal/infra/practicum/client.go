// Package practicum implements the HTTP client for the Practicum homework
// statuses API. It issues a single GET request per poll and maps every
// failure mode to a distinct error kind from the homework domain package.
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Client queries the homework statuses endpoint.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewClient creates a status API client. The timeout bounds the whole
// request so a hanging endpoint cannot stall the poll loop indefinitely.
func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// HomeworkStatuses requests homework records changed since fromDate and
// returns the parsed JSON body. Transport failures and non-200 replies map
// to homework.ErrEndpointUnavailable; an unparseable body maps to
// homework.ErrResponseNotJSON. No retry happens here; the poll loop retries
// the whole cycle on its fixed interval.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", homework.ErrEndpointUnavailable, c.endpoint, err)
	}

	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s with from_date %d: %v", homework.ErrEndpointUnavailable, c.endpoint, fromDate, err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"from_date":   fromDate,
	}).Debug("GET request sent to the homework statuses API")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s with from_date %d returned status %d", homework.ErrEndpointUnavailable, c.endpoint, fromDate, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", homework.ErrEndpointUnavailable, err)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", homework.ErrResponseNotJSON, err)
	}
	return parsed, nil
}
