package bbb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/transport"
	"github.com/meetkit/bbbclient/pkg/bbb/wire"
)

const (
	testBase   = "https://example.org/bigbluebutton/api"
	testSecret = "supersecret"
)

func newTestClient(t *testing.T, stub *transport.Stub) *Client {
	t.Helper()
	c, err := New(testBase, testSecret, WithTransport(stub))
	require.NoError(t, err)
	return c
}

func xmlResponse(body string) transport.Response {
	return transport.Response{StatusCode: 200, Body: []byte(body)}
}

func TestNewValidatesConfiguration(t *testing.T) {
	_, err := New("", testSecret)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = New(testBase, "")
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = New(testBase, testSecret, WithChecksumAlgorithm("md5"))
	assert.ErrorIs(t, err, ErrConfiguration)

	c, err := New(testBase+"/", testSecret)
	require.NoError(t, err)
	assert.Equal(t, testBase, c.BaseURL())
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvURL, testBase)
	t.Setenv(EnvSecret, testSecret)
	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, testBase, c.BaseURL())

	// Legacy secret name is a fallback.
	t.Setenv(EnvSecret, "")
	t.Setenv(EnvSecretLegacy, testSecret)
	_, err = FromEnv()
	require.NoError(t, err)

	t.Setenv(EnvURL, "")
	_, err = FromEnv()
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestGetMeetingsURLGolden(t *testing.T) {
	c, err := New(testBase, testSecret)
	require.NoError(t, err)

	u, err := c.GetMeetingsURL()
	require.NoError(t, err)
	assert.Equal(t, testBase+"/getMeetings?checksum=5fdbde25a3f33ed30647799b39ef0ceb3099f335", u)
}

func TestJoinURLGolden(t *testing.T) {
	c, err := New(testBase, testSecret)
	require.NoError(t, err)

	u, err := c.JoinURL(&params.Join{MeetingID: "weekly-sync", FullName: "Ana Silva", Password: "mp"})
	require.NoError(t, err)
	assert.Equal(t, testBase+"/join?meetingID=weekly-sync&fullName=Ana+Silva&password=mp&checksum=f02eb5e72c7f73857c140290ff614996def2255f", u)
}

func TestVersionURLIsBareEndpoint(t *testing.T) {
	c, err := New(testBase, testSecret)
	require.NoError(t, err)
	assert.Equal(t, testBase, c.VersionURL())
}

func TestURLBuildingIsPure(t *testing.T) {
	stub := &transport.Stub{}
	c := newTestClient(t, stub)

	_, err := c.CreateURL(&params.Create{MeetingID: "weekly-sync", Name: "Weekly Sync"})
	require.NoError(t, err)
	assert.Empty(t, stub.Requests, "URL building must not dispatch")
}

func TestValidationHappensBeforeDispatch(t *testing.T) {
	stub := &transport.Stub{}
	c := newTestClient(t, stub)

	_, err := c.Create(&params.Create{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, stub.Requests)
}

func TestCreateDispatch(t *testing.T) {
	stub := (&transport.Stub{}).Respond(xmlResponse(`<response>
	  <returncode>SUCCESS</returncode>
	  <meetingID>weekly-sync</meetingID>
	  <moderatorPW>mp</moderatorPW>
	</response>`))
	c := newTestClient(t, stub)

	resp, err := c.Create(&params.Create{MeetingID: "weekly-sync", Name: "Weekly Sync"})
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "weekly-sync", resp.MeetingID())
	assert.Equal(t, "mp", resp.ModeratorPW())

	req := stub.LastRequest()
	assert.Contains(t, req.URL, testBase+"/create?meetingID=weekly-sync&name=Weekly+Sync&checksum=")
	assert.Empty(t, req.Body)
}

func TestCreateWithPresentationBody(t *testing.T) {
	stub := (&transport.Stub{}).Respond(xmlResponse("<response><returncode>SUCCESS</returncode></response>"))
	c := newTestClient(t, stub)

	_, err := c.Create(&params.Create{
		MeetingID:    "weekly-sync",
		Name:         "Weekly Sync",
		Presentation: []byte("<modules/>"),
	})
	require.NoError(t, err)
	req := stub.LastRequest()
	assert.Equal(t, []byte("<modules/>"), req.Body)
	assert.Equal(t, "application/xml", req.ContentType)
}

func TestSessionTokenThreading(t *testing.T) {
	stub := (&transport.Stub{}).
		Respond(transport.Response{StatusCode: 200, Body: []byte("<response><returncode>SUCCESS</returncode></response>"), SessionToken: "node42"}).
		Respond(xmlResponse("<response><returncode>SUCCESS</returncode></response>"))
	c := newTestClient(t, stub)

	_, err := c.GetMeetings()
	require.NoError(t, err)
	assert.Equal(t, "node42", c.SessionToken())

	_, err = c.GetMeetings()
	require.NoError(t, err)
	assert.Equal(t, "node42", stub.LastRequest().SessionToken)

	c.SetSessionToken("restored")
	assert.Equal(t, "restored", c.SessionToken())
}

func TestTransportErrorsPropagate(t *testing.T) {
	stub := (&transport.Stub{}).Fail(transport.ErrTransport.Msg("server returned HTTP 502"))
	c := newTestClient(t, stub)

	_, err := c.GetMeetings()
	assert.ErrorIs(t, err, ErrTransport)
}

func TestMalformedResponse(t *testing.T) {
	stub := (&transport.Stub{}).Respond(xmlResponse("<response><oops>"))
	c := newTestClient(t, stub)

	_, err := c.GetMeetings()
	assert.ErrorIs(t, err, ErrParsing)
}

func TestIsConnectionWorking(t *testing.T) {
	t.Run("checksum rejection means bad secret", func(t *testing.T) {
		stub := (&transport.Stub{}).Respond(xmlResponse(`<response>
		  <returncode>FAILED</returncode>
		  <messageKey>checksumError</messageKey>
		</response>`))
		ok, class := newTestClient(t, stub).IsConnectionWorking()
		assert.False(t, ok)
		assert.Equal(t, FailureBadSecret, class)
	})

	t.Run("transport failure means bad URL", func(t *testing.T) {
		stub := (&transport.Stub{}).Fail(transport.ErrTransport.Msg("dial failed"))
		ok, class := newTestClient(t, stub).IsConnectionWorking()
		assert.False(t, ok)
		assert.Equal(t, FailureBadURL, class)
	})

	t.Run("non-API body means bad URL", func(t *testing.T) {
		stub := (&transport.Stub{}).Respond(xmlResponse("<html><body>welcome to nginx</body></html>"))
		ok, class := newTestClient(t, stub).IsConnectionWorking()
		assert.False(t, ok)
		assert.Equal(t, FailureBadURL, class)
	})

	t.Run("success", func(t *testing.T) {
		stub := (&transport.Stub{}).Respond(xmlResponse("<response><returncode>SUCCESS</returncode></response>"))
		ok, class := newTestClient(t, stub).IsConnectionWorking()
		assert.True(t, ok)
		assert.Equal(t, FailureNone, class)
	})
}

func TestGetRecordingTextTracksJSON(t *testing.T) {
	stub := (&transport.Stub{}).Respond(transport.Response{
		StatusCode: 200,
		Body:       []byte(`{"response": {"returncode": "SUCCESS", "tracks": [{"kind": "subtitles", "lang": "en-US"}]}}`),
	})
	c := newTestClient(t, stub)

	resp, err := c.GetRecordingTextTracks(&params.GetRecordingTextTracks{RecordID: "rec-1"})
	require.NoError(t, err)
	require.Len(t, resp.Tracks(), 1)
	assert.Equal(t, "en-US", resp.Tracks()[0].Lang())
}

func TestPutRecordingTextTrackMultipart(t *testing.T) {
	stub := (&transport.Stub{}).Respond(transport.Response{
		StatusCode: 200,
		Body:       []byte(`{"response": {"returncode": "SUCCESS", "recordId": "rec-1"}}`),
	})
	c := newTestClient(t, stub)

	resp, err := c.PutRecordingTextTrack(&params.PutRecordingTextTrack{
		RecordID:    "rec-1",
		Kind:        "subtitles",
		Lang:        "en-US",
		File:        []byte("WEBVTT\n"),
		FileName:    "captions.vtt",
		ContentType: "text/vtt",
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", resp.RecordID())

	req := stub.LastRequest()
	assert.True(t, strings.HasPrefix(req.ContentType, "multipart/form-data; boundary="))
	assert.Contains(t, string(req.Body), "WEBVTT")
	assert.Contains(t, string(req.Body), `filename="captions.vtt"`)
	assert.Contains(t, string(req.Body), "text/vtt")
	// The file never leaks into the signed URL.
	assert.NotContains(t, req.URL, "WEBVTT")
}

func TestSetConfigXMLSignsBody(t *testing.T) {
	stub := (&transport.Stub{}).Respond(xmlResponse("<response><returncode>SUCCESS</returncode><configToken>tok123</configToken></response>"))
	c := newTestClient(t, stub)

	resp, err := c.SetConfigXML(&params.SetConfigXML{MeetingID: "weekly-sync", ConfigXML: []byte("<config/>")})
	require.NoError(t, err)
	assert.Equal(t, "tok123", resp.Token())

	req := stub.LastRequest()
	assert.Equal(t, testBase+"/setConfigXML", req.URL, "URL carries no query string")
	assert.Equal(t, "application/x-www-form-urlencoded", req.ContentType)
	assert.Equal(t,
		"configXML=%3Cconfig%2F%3E&meetingID=weekly-sync&checksum=f62254123a968d1f584a15b9d148e8d34a64f960",
		string(req.Body))
}

func TestHookOperations(t *testing.T) {
	stub := (&transport.Stub{}).
		Respond(xmlResponse("<response><returncode>SUCCESS</returncode><hookID>7</hookID></response>")).
		Respond(xmlResponse("<response><returncode>SUCCESS</returncode><removed>true</removed></response>"))
	c := newTestClient(t, stub)

	created, err := c.CreateHook(&params.CreateHook{CallbackURL: "https://example.org/events"})
	require.NoError(t, err)
	assert.Equal(t, 7, created.HookID())
	assert.Contains(t, stub.LastRequest().URL, testBase+"/hooks/create?callbackURL=")

	destroyed, err := c.DestroyHook(&params.DestroyHook{HookID: 7})
	require.NoError(t, err)
	assert.True(t, destroyed.Removed())
}

func TestChecksumAlgorithmOverride(t *testing.T) {
	c, err := New(testBase, testSecret, WithChecksumAlgorithm(wire.SHA256))
	require.NoError(t, err)

	u, err := c.GetMeetingsURL()
	require.NoError(t, err)
	assert.Equal(t, testBase+"/getMeetings?checksum=4c3dda2256dbc62fbca78a1854b0a3cc6ab30beb46a982739eec1ba5ebb68a0e", u)
}
