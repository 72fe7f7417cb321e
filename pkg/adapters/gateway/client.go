package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/interfaces"
	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/safe"
)

const (
	pathSessions = "/json/sessions"
	pathCronList = "/json/cron/list"
	pathAgents   = "/json/agents"
	pathChannels = "/json/channels"

	// DefaultTimeout bounds each gateway call
	DefaultTimeout = 5 * time.Second

	maxResponseBytes = 8 << 20
)

// Client reads the automation gateway's JSON API with a static bearer token
type Client struct {
	baseURL    *url.URL
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// Option is a functional option for Client
type Option func(*Client)

// WithToken sets the bearer token sent on every request
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a gateway client for baseURL, e.g. http://127.0.0.1:18789
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid gateway URL", goerr.TV(apperr.URLKey, baseURL), goerr.T(apperr.ErrTagInvalidFormat))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("gateway URL must be http or https", goerr.TV(apperr.URLKey, baseURL), goerr.T(apperr.ErrTagInvalidFormat))
	}
	if u.Host == "" {
		return nil, goerr.New("gateway URL has no host", goerr.TV(apperr.URLKey, baseURL), goerr.T(apperr.ErrTagInvalidFormat))
	}

	c := &Client{
		baseURL:    u,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

var _ interfaces.GatewayClient = (*Client)(nil)

// ListActiveSessions calls GET /json/sessions?active=true
func (c *Client) ListActiveSessions(ctx context.Context) (*gateway.SessionList, error) {
	var out gateway.SessionList
	if err := c.getJSON(ctx, pathSessions, url.Values{"active": {"true"}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCronJobs calls GET /json/cron/list
func (c *Client) ListCronJobs(ctx context.Context) (*gateway.CronJobList, error) {
	var out gateway.CronJobList
	if err := c.getJSON(ctx, pathCronList, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAgents calls GET /json/agents
func (c *Client) ListAgents(ctx context.Context) (*gateway.AgentList, error) {
	var out gateway.AgentList
	if err := c.getJSON(ctx, pathAgents, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListChannels calls GET /json/channels
func (c *Client) ListChannels(ctx context.Context) (*gateway.ChannelList, error) {
	var out gateway.ChannelList
	if err := c.getJSON(ctx, pathChannels, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.endpoint(path, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build gateway request", goerr.TV(apperr.URLKey, endpoint), goerr.T(apperr.ErrTagInternal))
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		opts := []goerr.Option{goerr.TV(apperr.URLKey, endpoint), goerr.T(apperr.ErrTagGateway)}
		if ctx.Err() == context.DeadlineExceeded {
			opts = append(opts, goerr.T(apperr.ErrTagTimeout), goerr.V("timeout", c.timeout))
		}
		return goerr.Wrap(err, "gateway unavailable", opts...)
	}
	defer safe.Close(ctx, resp.Body)

	ctxlog.From(ctx).Debug("gateway responded",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain a little of the body so the error carries the gateway's reason
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return goerr.New("gateway returned non-success status",
			goerr.TV(apperr.URLKey, endpoint),
			goerr.TV(apperr.StatusCodeKey, resp.StatusCode),
			goerr.V("body", string(snippet)),
			goerr.T(apperr.ErrTagGateway),
		)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode gateway response",
			goerr.TV(apperr.URLKey, endpoint),
			goerr.T(apperr.ErrTagGateway),
		)
	}

	return nil
}
