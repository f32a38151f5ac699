// Package verify talks to an external phone verification provider
// (Twilio Verify wire format). One-time codes are requested over SMS with a
// single voice-call fallback, and checked against the provider; the attempt
// itself is never persisted locally.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"microblog/config"
)

const defaultBaseURL = "https://verify.twilio.com/v2"

// Verifier starts and checks one-time phone verifications.
type Verifier interface {
	RequestVerificationToken(ctx context.Context, phone string) error
	CheckVerificationToken(ctx context.Context, phone, code string) bool
}

// Client is an HTTP client for the provider's verification service.
type Client struct {
	AccountSID string
	AuthToken  string
	ServiceID  string
	BaseURL    string // overridable for tests
	HTTPClient *http.Client
}

func NewClient(conf config.Configuration) *Client {
	base := conf.Verify.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		AccountSID: conf.Verify.AccountSID,
		AuthToken:  conf.Verify.AuthToken,
		ServiceID:  conf.Verify.ServiceID,
		BaseURL:    base,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// RequestVerificationToken asks the provider to deliver a one-time code to
// phone over SMS. If the provider reports a failure the voice channel is
// tried exactly once; if both fail the error propagates to the caller.
func (c *Client) RequestVerificationToken(ctx context.Context, phone string) error {
	if err := c.startVerification(ctx, phone, "sms"); err != nil {
		return c.startVerification(ctx, phone, "call")
	}
	return nil
}

// CheckVerificationToken submits code to the provider. It returns true only
// when the provider answers with status "approved"; any transport error,
// non-2xx response or other status counts as not approved.
func (c *Client) CheckVerificationToken(ctx context.Context, phone, code string) bool {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("Code", code)

	body, err := c.post(ctx, c.serviceURL("VerificationCheck"), form)
	if err != nil {
		return false
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return false
	}
	return result.Status == "approved"
}

func (c *Client) startVerification(ctx context.Context, phone, channel string) error {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("Channel", channel)

	_, err := c.post(ctx, c.serviceURL("Verifications"), form)
	return err
}

func (c *Client) serviceURL(resource string) string {
	return fmt.Sprintf("%s/Services/%s/%s", c.BaseURL, c.ServiceID, resource)
}

func (c *Client) post(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.AccountSID, c.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("verify api error: status=%d body=%s", resp.StatusCode, string(body))
	}
	return body, nil
}
