// Package dashboard is the client side of the dashboard's own /api/data
// endpoint, used by the terminal presenter.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/interfaces"
	model "github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/safe"
)

const (
	apiPath = "/api/data"

	// DefaultTimeout is longer than the gateway timeout because the server
	// waits for its slowest upstream source before answering.
	DefaultTimeout = 15 * time.Second
)

type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New returns a client for the dashboard served at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, goerr.New("invalid dashboard URL", goerr.TV(apperr.URLKey, baseURL), goerr.T(apperr.ErrTagInvalidFormat))
	}
	u.Path += apiPath

	c := &Client{
		endpoint:   u.String(),
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ interfaces.DashboardClient = (*Client)(nil)

// GetSnapshot fetches the full, unfiltered snapshot
func (c *Client) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build snapshot request", goerr.TV(apperr.URLKey, c.endpoint))
	}

	var snapshot model.Snapshot
	if err := c.do(ctx, req, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// SubmitAction posts {action, data} and discards the echo
func (c *Client) SubmitAction(ctx context.Context, action model.Action, data any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := json.Marshal(data)
	if err != nil {
		return goerr.Wrap(err, "failed to encode action data", goerr.TV(apperr.ActionKey, string(action)))
	}
	body, err := json.Marshal(model.ActionRequest{Action: action, Data: raw})
	if err != nil {
		return goerr.Wrap(err, "failed to encode action", goerr.TV(apperr.ActionKey, string(action)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to build action request", goerr.TV(apperr.URLKey, c.endpoint))
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req, nil)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "dashboard unavailable", goerr.TV(apperr.URLKey, c.endpoint), goerr.T(apperr.ErrTagExternal))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&e)
		return goerr.New("dashboard rejected request",
			goerr.TV(apperr.URLKey, c.endpoint),
			goerr.TV(apperr.StatusCodeKey, resp.StatusCode),
			goerr.V("reason", e.Error),
			goerr.T(apperr.ErrTagExternal),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode dashboard response", goerr.TV(apperr.URLKey, c.endpoint), goerr.T(apperr.ErrTagExternal))
	}
	return nil
}
