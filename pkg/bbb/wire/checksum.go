package wire

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/meetkit/bbbclient/internal/common/apperrors"
)

// ChecksumParam is the reserved query-string key carrying the request
// checksum. It is always the last parameter of a signed query string.
const ChecksumParam = "checksum"

// ErrUnknownAlgorithm is returned when a checksum algorithm name is not
// supported.
var ErrUnknownAlgorithm = apperrors.New("unknown checksum algorithm")

// Algorithm names the digest used to sign requests. The zero value selects
// SHA-1, which is what stock BigBlueButton deployments verify against.
type Algorithm string

const (
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA1, "":
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, ErrUnknownAlgorithm.Msg("unknown checksum algorithm: " + string(a))
	}
}

// Sum returns the lowercase hex digest of data under the algorithm.
func (a Algorithm) Sum(data string) (string, error) {
	h, err := a.newHash()
	if err != nil {
		return "", err
	}
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Checksum signs an API call: the digest of method + query + secret
// concatenated with no separators. An empty query degenerates to
// method + secret, which is how parameterless calls are signed.
func Checksum(alg Algorithm, method, query, secret string) (string, error) {
	return alg.Sum(method + query + secret)
}
