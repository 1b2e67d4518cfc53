package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden digests pin the exact signing order (method + encoded query +
// secret, no separators) against a live server's verification.
func TestChecksumGolden(t *testing.T) {
	sum, err := Checksum(SHA1, "getMeetings", "", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "5fdbde25a3f33ed30647799b39ef0ceb3099f335", sum)

	sum, err = Checksum(SHA1, "create", "meetingID=demo&name=Demo+Meeting", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "0131fc59dcb1cd302afa71b6c236d1227cabe052", sum)

	sum, err = Checksum(SHA256, "getMeetings", "", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "4c3dda2256dbc62fbca78a1854b0a3cc6ab30beb46a982739eec1ba5ebb68a0e", sum)

	// Body-signed upload: the "query" argument is the raw body.
	sum, err = Checksum(SHA1, "setConfigXML", "<config/>", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "98de2499b7a83ecb7ffce019ed86dbda908f963a", sum)
}

func TestChecksumDeterministic(t *testing.T) {
	a, err := Checksum("", "end", "meetingID=demo", "supersecret")
	require.NoError(t, err)
	b, err := Checksum(SHA1, "end", "meetingID=demo", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "81523f942ab8d4594f84cff9856d3fb98928b74a", a)

	// Mutating any single input changes the digest.
	m, err := Checksum(SHA1, "create", "meetingID=demo", "supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, a, m)
	q, err := Checksum(SHA1, "end", "meetingID=other", "supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, a, q)
	s, err := Checksum(SHA1, "end", "meetingID=demo", "othersecret")
	require.NoError(t, err)
	assert.NotEqual(t, a, s)
}

func TestChecksumUnknownAlgorithm(t *testing.T) {
	_, err := Checksum("md5", "end", "", "supersecret")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
