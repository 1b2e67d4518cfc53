package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds one round trip through the reference transport.
const DefaultTimeout = 30 * time.Second

// HTTPTransport is the reference Transport over net/http. The underlying
// client reuses connections across calls; the per-request timeout converts
// to a transport error on expiry.
type HTTPTransport struct {
	client *http.Client
	logger zerolog.Logger
}

// HTTPOption configures an HTTPTransport.
type HTTPOption func(*HTTPTransport)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTPTransport) {
		t.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying net/http client entirely, for
// callers that need custom TLS or proxy settings.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(t *HTTPTransport) {
		t.client = c
	}
}

// WithLogger enables debug logging of dispatched requests.
func WithLogger(l zerolog.Logger) HTTPOption {
	return func(t *HTTPTransport) {
		t.logger = l
	}
}

// NewHTTPTransport creates the reference transport with the default timeout
// and applies the provided options.
func NewHTTPTransport(opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{Timeout: DefaultTimeout},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Do dispatches the request. GET is used for empty bodies, POST otherwise.
// A network failure or a non-2xx status returns an error derived from
// ErrTransport; the caller never sees an HTTP error as an empty success.
func (t *HTTPTransport) Do(req Request) (Response, error) {
	verb := http.MethodGet
	var bodyReader io.Reader
	if len(req.Body) > 0 {
		verb = http.MethodPost
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequest(verb, req.URL, bodyReader)
	if err != nil {
		return Response{}, ErrTransport.MsgErr("failed to create request", err)
	}
	if len(req.Body) > 0 && req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if req.SessionToken != "" {
		httpReq.AddCookie(&http.Cookie{Name: SessionCookie, Value: req.SessionToken})
	}

	t.logger.Debug().Str("verb", verb).Str("url", req.URL).Int("body_bytes", len(req.Body)).Msg("dispatching request")

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return Response{}, ErrTransport.MsgErr("request failed", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, ErrTransport.MsgErr("failed to read response body", err)
	}

	resp := Response{
		Body:         body,
		StatusCode:   httpResp.StatusCode,
		SessionToken: sessionToken(httpResp.Cookies()),
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, ErrTransport.
			Msg(fmt.Sprintf("server returned HTTP %d", httpResp.StatusCode)).
			SetStatusCode(httpResp.StatusCode)
	}

	return resp, nil
}

func sessionToken(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == SessionCookie {
			return c.Value
		}
	}
	return ""
}

var _ Transport = &HTTPTransport{}
