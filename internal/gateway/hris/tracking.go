package hris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/tracking"
)

// trackingTimeout bounds a single report delivery.
const trackingTimeout = 10 * time.Second

// TrackingClient posts raw position reports to the fleet tracking
// endpoint. It is credentialed with a standalone key, independent of
// the attendance session.
type TrackingClient struct {
	endpoint string
	key      string
	http     *http.Client
}

var _ tracking.Sender = (*TrackingClient)(nil)

func NewTrackingClient(endpoint, key string, httpClient *http.Client) *TrackingClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: trackingTimeout}
	}
	return &TrackingClient{
		endpoint: endpoint,
		key:      key,
		http:     httpClient,
	}
}

// Send implements tracking.Sender.
func (c *TrackingClient) Send(ctx context.Context, report tracking.Report) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode tracking report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, trackingTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s", c.endpoint, c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build tracking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	return nil
}
