package wire

import "strings"

// URLBuilder assembles signed request URLs for one API endpoint. It holds
// the base endpoint, the shared secret, and the checksum algorithm; it keeps
// no per-call state.
type URLBuilder struct {
	Base      string
	Secret    string
	Algorithm Algorithm
}

// BuildURL composes the final request URL. An empty method returns the bare
// base endpoint, which is the version-probe call. Otherwise the result is
// base/method?query&checksum=<hex>. With appendChecksum false the checksum
// is left out entirely, for the deprecated operation that carries it in the
// request body instead. The query must already be encoded; it is never
// re-escaped here.
func (b *URLBuilder) BuildURL(method, query string, appendChecksum bool) (string, error) {
	if method == "" {
		return b.Base, nil
	}
	u := strings.TrimSuffix(b.Base, "/") + "/" + method
	if !appendChecksum {
		if query != "" {
			u += "?" + query
		}
		return u, nil
	}
	qs, err := b.BuildQS(method, query)
	if err != nil {
		return "", err
	}
	return u + "?" + qs, nil
}

// BuildQS returns only the query&checksum piece for a method. It is used
// directly when the signed parameters must travel in a POST body rather
// than in the URL.
func (b *URLBuilder) BuildQS(method, query string) (string, error) {
	sum, err := Checksum(b.Algorithm, method, query, b.Secret)
	if err != nil {
		return "", err
	}
	if query == "" {
		return ChecksumParam + "=" + sum, nil
	}
	return query + "&" + ChecksumParam + "=" + sum, nil
}
