package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type webhookProvider struct {
	url    string
	client *http.Client
}

func newWebhookProvider(url string) webhookProvider {
	return webhookProvider{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Send posts the message as JSON. Any non-2xx answer is an error.
func (p webhookProvider) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook rejected %s message: status %d", msg.Channel, resp.StatusCode)
	}
	return nil
}
