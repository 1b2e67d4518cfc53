package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "https://example.org/bigbluebutton/api"

func TestBuildURLBareEndpoint(t *testing.T) {
	b := &URLBuilder{Base: testBase, Secret: "supersecret"}
	u, err := b.BuildURL("", "", true)
	require.NoError(t, err)
	assert.Equal(t, testBase, u)
}

func TestBuildURLEmptyQueryStillSigned(t *testing.T) {
	b := &URLBuilder{Base: testBase, Secret: "supersecret"}
	u, err := b.BuildURL("getMeetings", "", true)
	require.NoError(t, err)
	assert.Equal(t, testBase+"/getMeetings?checksum=5fdbde25a3f33ed30647799b39ef0ceb3099f335", u)
}

func TestBuildURLWithQuery(t *testing.T) {
	b := &URLBuilder{Base: testBase + "/", Secret: "supersecret"}
	u, err := b.BuildURL("create", "meetingID=demo&name=Demo+Meeting", true)
	require.NoError(t, err)
	assert.Equal(t, testBase+"/create?meetingID=demo&name=Demo+Meeting&checksum=0131fc59dcb1cd302afa71b6c236d1227cabe052", u)
}

func TestBuildURLWithoutChecksum(t *testing.T) {
	b := &URLBuilder{Base: testBase, Secret: "supersecret"}
	u, err := b.BuildURL("setConfigXML", "", false)
	require.NoError(t, err)
	assert.Equal(t, testBase+"/setConfigXML", u)

	u, err = b.BuildURL("join", "meetingID=demo", false)
	require.NoError(t, err)
	assert.Equal(t, testBase+"/join?meetingID=demo", u)
}

func TestBuildQS(t *testing.T) {
	b := &URLBuilder{Base: testBase, Secret: "supersecret"}
	qs, err := b.BuildQS("end", "meetingID=demo")
	require.NoError(t, err)
	assert.Equal(t, "meetingID=demo&checksum=81523f942ab8d4594f84cff9856d3fb98928b74a", qs)

	qs, err = b.BuildQS("getMeetings", "")
	require.NoError(t, err)
	assert.Equal(t, "checksum=5fdbde25a3f33ed30647799b39ef0ceb3099f335", qs)
}

func TestBuildURLUnknownAlgorithm(t *testing.T) {
	b := &URLBuilder{Base: testBase, Secret: "supersecret", Algorithm: "crc32"}
	_, err := b.BuildURL("getMeetings", "", true)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
