// Package wire implements the request-signing layer of the BigBlueButton
// API: ordered query-string encoding, keyed checksum computation, and final
// URL assembly. The server verifies the checksum against the query string
// exactly as it appears on the wire, so ordering and escaping here are part
// of the protocol contract, not a presentation choice.
package wire

import (
	"net/url"
	"strings"
)

// Pair is one key/value element of a query string, in wire order.
type Pair struct {
	Key   string
	Value string
}

// Encode percent-encodes pairs and joins them with '&', preserving the
// order in which they were emitted. Values are escaped with standard query
// escaping (spaces become '+'), matching what the server hashes during
// checksum verification.
func Encode(pairs []Pair) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
