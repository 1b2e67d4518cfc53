// Package transport defines the HTTP dispatch layer of the client. The
// Transport interface is deliberately narrow — one request in, one response
// out — so the reference net/http implementation can be swapped for a stub
// in tests or for an instrumented client in applications.
package transport

import (
	"github.com/meetkit/bbbclient/internal/common/apperrors"
)

// ErrTransport is the root error for network failures, timeouts, and non-2xx
// responses. All errors returned by implementations in this package derive
// from it.
var ErrTransport = apperrors.New("transport failure")

// SessionCookie is the cookie name carrying the server-affinity token.
// Load-balanced deployments route by it, so the client replays it on every
// subsequent request.
const SessionCookie = "JSESSIONID"

// Request is one outgoing API call. Body is empty for GET-style operations;
// a non-empty body switches the dispatch to POST with ContentType set.
// SessionToken, when non-empty, is a previously captured affinity token to
// replay.
type Request struct {
	URL          string
	Body         []byte
	ContentType  string
	SessionToken string
}

// Response is the raw result of a dispatched request. SessionToken carries
// an affinity token found in the response metadata, or "" when the server
// set none.
type Response struct {
	Body         []byte
	StatusCode   int
	SessionToken string
}

// Transport dispatches a single request and returns the raw response.
// Implementations must surface non-2xx statuses as errors rather than as
// successful empty responses, and must capture any affinity token the
// server sets.
type Transport interface {
	Do(req Request) (Response, error)
}
