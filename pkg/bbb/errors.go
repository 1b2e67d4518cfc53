package bbb

import (
	"github.com/meetkit/bbbclient/internal/common/apperrors"
	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
	"github.com/meetkit/bbbclient/pkg/bbb/transport"
)

// ErrConfiguration is returned at construction time when the base URL or
// shared secret is missing or the checksum algorithm is unknown.
var ErrConfiguration = apperrors.New("configuration error")

// Classification roots of the failing layers, re-exported so callers can
// match with errors.Is against this package alone.
var (
	// ErrValidation: a required call parameter was absent. Raised before
	// any network I/O.
	ErrValidation = params.ErrValidation

	// ErrTransport: network failure, timeout, or non-2xx status.
	ErrTransport = transport.ErrTransport

	// ErrParsing: the response body could not be decoded.
	ErrParsing = response.ErrParsing
)
