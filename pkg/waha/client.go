// Package waha is a minimal client for the WAHA (WhatsApp HTTP API)
// gateway: outbound text messages plus the webhook envelope types.
package waha

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the WAHA HTTP API client.
type Client struct {
	baseURL    string
	session    string
	httpClient *http.Client
}

// NewClient creates a WAHA client for the given gateway URL and session
// name (WAHA's default session is "default").
func NewClient(baseURL, session string) *Client {
	if session == "" {
		session = "default"
	}
	return &Client{
		baseURL:    baseURL,
		session:    session,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetBaseURL overrides the gateway URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SendText sends a plain text message to a WhatsApp chat.
func (c *Client) SendText(chatID, text string) error {
	url := fmt.Sprintf("%s/api/sendText", c.baseURL)
	payload := SendTextRequest{
		ChatID:  chatID,
		Text:    text,
		Session: c.session,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	resp, err := c.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("waha sendText API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
