package lichess

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/lichessexport/internal/errors"
	"github.com/vytor/lichessexport/internal/logger"
)

const DefaultBaseURL = "https://lichess.org"

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another lichess instance.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithToken sets the personal API token sent as a bearer credential.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type errorBody struct {
	Error string `json:"error"`
}

// ExportOneGame fetches one game as JSON.
func (c *Client) ExportOneGame(ctx context.Context, req Requester) (*Game, error) {
	var game Game
	if err := c.do(ctx, req.Request(), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *Client) do(ctx context.Context, r Request, out any) error {
	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}
	log := logger.FromContext(ctx).WithPrefix("lichess").WithField("path", r.Path)

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	log.Debug("requesting %s %s", method, target)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return errors.NewRequestError(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %v", err)
		return errors.NewRequestError(err)
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Warn("request rejected: status=%d, body=%s", resp.StatusCode, string(body))
		return errors.NewStatusError(resp.StatusCode, errorMessage(resp.StatusCode, body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return errors.NewDecodeError("response", err)
	}
	return nil
}

// errorMessage prefers the lichess {"error": "..."} body.
func errorMessage(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		return eb.Error
	}
	return fmt.Sprintf("status %d: %s", status, strings.TrimSpace(string(body)))
}
