package coingecko

import (
	"context"
	"fmt"
	"net/http"
)

// HealthCheck implements ports.HealthChecker against the CoinGecko ping
// endpoint. Failure here never degrades the wallet; it only surfaces in the
// health report.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a price feed health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks upstream reachability.
func (h *HealthCheck) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.client.baseURL+"/ping", nil)
	if err != nil {
		return err
	}
	resp, err := h.client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping returned status %d", resp.StatusCode)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "price_feed"
}
