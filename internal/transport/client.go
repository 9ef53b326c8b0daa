package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/agentstation/birdmap/pkg/constants"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for page requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client fetches HTML pages.
type Client struct {
	http      *http.Client
	decorator Decorator
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a client that applies decorator to every request.
func New(decorator Decorator, opts ...Option) *Client {
	if decorator == nil {
		decorator = NoHeaders{}
	}
	c := &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		decorator: decorator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs req with the client's headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	c.decorator.Apply(req)
	return c.http.Do(req)
}

// Get performs a GET request. Transport failures come back as FetchError.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	resp, err := c.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapFetch(url, ctx.Err())
		}
		return nil, errors.WrapFetch(url, err)
	}
	return resp, nil
}

// Page is a fetched HTML document.
type Page struct {
	URL  string // final URL after redirects
	Body []byte
}

// Fetch retrieves url and returns its body. Non-200 answers are FetchErrors.
func (c *Client) Fetch(ctx context.Context, url string) (*Page, error) {
	logging.Ctx(ctx).Debug().Str("url", url).Msg("Fetching page")

	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	body, err := ReadBody(resp)
	if err != nil {
		return nil, err
	}

	final := url
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}
	return &Page{URL: final, Body: body}, nil
}
