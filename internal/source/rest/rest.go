// Package rest holds the resty setup shared by the upstream HTTP sources.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	cli *resty.Client
}

// New returns a JSON client for baseURL. A non-empty token is sent as a
// bearer token, a non-positive timeout falls back to 10s.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cli := resty.New()
	cli.SetBaseURL(baseURL)
	cli.SetTimeout(timeout)
	cli.SetHeader("Accept", "application/json")
	if token != "" {
		cli.SetAuthToken(token)
	}
	return &Client{cli: cli}
}

// GetJSON decodes the body of GET path into out. Non-2xx responses are errors.
func (c *Client) GetJSON(ctx context.Context, path string, params map[string]string, out any) error {
	body, err := c.get(ctx, path, params, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("could not unmarshal response: %w : body: %s", err, body)
	}
	return nil
}

// GetRaw returns the body of GET path untouched.
func (c *Client) GetRaw(ctx context.Context, path string, params map[string]string, accept string) ([]byte, error) {
	return c.get(ctx, path, params, accept)
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, accept string) ([]byte, error) {
	req := c.cli.R().
		SetContext(ctx).
		SetQueryParams(params)
	if accept != "" {
		req.SetHeader("Accept", accept)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
