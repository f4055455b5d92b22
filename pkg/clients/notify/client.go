package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sudhakarm/stonemine/internal/config"
)

// Client posts daily-close summaries to a configured webhook.
type Client interface {
	SendDailySummary(ctx context.Context, payload DailySummaryPayload) error
}

// DailySummaryPayload is the JSON body delivered to the webhook.
type DailySummaryPayload struct {
	Date         string  `json:"date"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Net          float64 `json:"net"`
	Message      string  `json:"message"`
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook notifier from configuration.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// SendDailySummary delivers the payload; any non-2xx answer is an error.
func (c *WebhookClient) SendDailySummary(ctx context.Context, payload DailySummaryPayload) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post daily summary: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook answered %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
