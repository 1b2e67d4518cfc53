// Package bbb is a client for the BigBlueButton conferencing-server HTTP
// API. It builds checksum-signed request URLs, dispatches them through a
// pluggable transport, and decodes the XML/JSON responses into typed result
// objects. Every operation has a pure URL-building method and a dispatching
// method; the only mutable client state is the last-seen server-affinity
// token.
package bbb

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
	"github.com/meetkit/bbbclient/pkg/bbb/transport"
	"github.com/meetkit/bbbclient/pkg/bbb/wire"
)

// Environment variables consulted by FromEnv.
const (
	EnvURL    = "BBB_URL"
	EnvSecret = "BBB_SECRET"

	// EnvSecretLegacy is the historical name of the shared secret, kept as
	// a fallback for deployments that still export it.
	EnvSecretLegacy = "BBB_SECURITY_SALT"
)

// Client calls one BigBlueButton deployment. It is constructed once with the
// base API endpoint and shared secret and reused across calls. The session
// affinity token mutates as a side effect of each call, so a Client must not
// be shared between goroutines without external synchronization.
type Client struct {
	builder      wire.URLBuilder
	transport    transport.Transport
	logger       zerolog.Logger
	sessionToken string
}

// Option configures a Client at construction.
type Option func(*Client)

// WithTransport replaces the reference HTTP transport, typically with a stub
// in tests.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithChecksumAlgorithm overrides the SHA-1 default for deployments
// configured to verify with a stronger hash.
func WithChecksumAlgorithm(alg wire.Algorithm) Option {
	return func(c *Client) {
		c.builder.Algorithm = alg
	}
}

// WithLogger enables debug logging of dispatched calls.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client for the deployment at baseURL, signing requests with
// secret. Both are required; the checksum algorithm is validated so a bad
// algorithm surfaces here rather than on the first call.
func New(baseURL, secret string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrConfiguration.Msg("base URL is required")
	}
	if secret == "" {
		return nil, ErrConfiguration.Msg("shared secret is required")
	}
	c := &Client{
		builder: wire.URLBuilder{
			Base:      strings.TrimSuffix(baseURL, "/"),
			Secret:    secret,
			Algorithm: wire.SHA1,
		},
		transport: transport.NewHTTPTransport(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if _, err := c.builder.Algorithm.Sum(""); err != nil {
		return nil, ErrConfiguration.Err(err)
	}
	return c, nil
}

// FromEnv creates a Client from BBB_URL and BBB_SECRET, falling back to
// BBB_SECURITY_SALT for the secret. Missing values fail the same way as
// empty arguments to New.
func FromEnv(opts ...Option) (*Client, error) {
	secret := os.Getenv(EnvSecret)
	if secret == "" {
		secret = os.Getenv(EnvSecretLegacy)
	}
	return New(os.Getenv(EnvURL), secret, opts...)
}

// BaseURL returns the API endpoint the client was constructed with.
func (c *Client) BaseURL() string {
	return c.builder.Base
}

// SessionToken returns the last affinity token captured from a response, or
// "" when none was issued. Callers that persist sessions across restarts
// read it here.
func (c *Client) SessionToken() string {
	return c.sessionToken
}

// SetSessionToken seeds the affinity token replayed on subsequent calls,
// for callers restoring a persisted session.
func (c *Client) SetSessionToken(token string) {
	c.sessionToken = token
}

// buildURL encodes and signs one call. It is the pure half of every
// operation: no I/O happens here.
func (c *Client) buildURL(method Method, p params.Encoder) (string, error) {
	pairs, err := p.Pairs()
	if err != nil {
		return "", err
	}
	return c.builder.BuildURL(string(method), wire.Encode(pairs), true)
}

// do performs one round trip. The affinity token from the response replaces
// the remembered one before errors are considered, so a failed call on a
// rebalanced deployment still updates routing.
func (c *Client) do(u string, body []byte, contentType string) ([]byte, error) {
	resp, err := c.transport.Do(transport.Request{
		URL:          u,
		Body:         body,
		ContentType:  contentType,
		SessionToken: c.sessionToken,
	})
	if resp.SessionToken != "" {
		c.sessionToken = resp.SessionToken
	}
	if err != nil {
		if errors.Is(err, transport.ErrTransport) {
			return nil, err
		}
		return nil, ErrTransport.Err(err)
	}
	c.logger.Debug().Str("url", u).Int("status", resp.StatusCode).Msg("call completed")
	return resp.Body, nil
}

func (c *Client) callXML(method Method, p params.Encoder, body []byte, contentType string) (*response.Document, error) {
	u, err := c.buildURL(method, p)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(u, body, contentType)
	if err != nil {
		return nil, err
	}
	return response.DecodeXML(raw)
}

func (c *Client) callJSON(method Method, p params.Encoder, body []byte, contentType string) (*response.Document, error) {
	u, err := c.buildURL(method, p)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(u, body, contentType)
	if err != nil {
		return nil, err
	}
	return response.DecodeJSON(raw)
}
