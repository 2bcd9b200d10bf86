package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
	"github.com/rizqunbw/rizqu-moneytracker/internal/observability/metrics"
)

// Client forwards requests to a user's ledger script. Responses pass through
// verbatim once they prove to be JSON; Apps Script redirects reads to a
// one-time content URL, which the default transport follows.
type Client struct {
	hc  *http.Client
	log *slog.Logger
}

func NewClient(timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		log: log,
	}
}

// Get performs a read action (get_transactions, get_summary, get_logs).
func (c *Client) Get(ctx context.Context, scriptURL, action string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scriptURL+"?action="+action, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req, action)
}

// Post performs a write action; the action name travels in the payload.
func (c *Client) Post(ctx context.Context, scriptURL string, payload map[string]interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, scriptURL, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	action, _ := payload["action"].(string)
	return c.do(req, action)
}

func (c *Client) do(req *http.Request, action string) (json.RawMessage, error) {
	start := time.Now()

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ledger request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger response: %w", err)
	}

	duration := time.Since(start)
	metrics.UpstreamRequestDuration.WithLabelValues("ledger").Observe(duration.Seconds())
	c.log.Debug("ledger call", "action", action, "status", resp.StatusCode, "duration", duration.String())

	if !json.Valid(body) {
		c.log.Warn("ledger returned non-JSON", "action", action)
		return nil, apperrors.ErrInvalidUpstream
	}

	return json.RawMessage(body), nil
}
