package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Email is the payload accepted by the email API.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// EmailClient talks to a Resend-compatible transactional email API.
type EmailClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewEmailClient creates a new email client
func NewEmailClient(baseURL, apiKey string) *EmailClient {
	return &EmailClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Configured reports whether an API key is present.
func (c *EmailClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Send posts the email. A non-2xx response becomes *UpstreamError carrying the body.
func (c *EmailClient) Send(ctx context.Context, email Email) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	jsonData, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}
