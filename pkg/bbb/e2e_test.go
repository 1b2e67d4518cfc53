package bbb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetkit/bbbclient/pkg/bbb"
	"github.com/meetkit/bbbclient/pkg/bbb/bbbtest"
	"github.com/meetkit/bbbclient/pkg/bbb/params"
)

// These tests run the full stack: signed URL construction, the reference
// HTTP transport, checksum verification on the server side, and response
// decoding.

func TestEndToEndMeetingLifecycle(t *testing.T) {
	srv := bbbtest.New("supersecret")
	defer srv.Close()

	srv.Stub("create", `<response>
	  <returncode>SUCCESS</returncode>
	  <meetingID>weekly-sync</meetingID>
	  <internalMeetingID>abc-123</internalMeetingID>
	  <moderatorPW>mp</moderatorPW>
	  <attendeePW>ap</attendeePW>
	</response>`)
	srv.Stub("isMeetingRunning", `<response><returncode>SUCCESS</returncode><running>true</running></response>`)
	srv.Stub("end", `<response><returncode>SUCCESS</returncode><messageKey>sentEndMeetingRequest</messageKey></response>`)

	c, err := bbb.New(srv.URL(), "supersecret")
	require.NoError(t, err)

	created, err := c.Create(&params.Create{MeetingID: "weekly-sync", Name: "Weekly Sync"})
	require.NoError(t, err)
	assert.True(t, created.OK())
	assert.Equal(t, "abc-123", created.InternalMeetingID())

	running, err := c.IsMeetingRunning(&params.IsMeetingRunning{MeetingID: "weekly-sync"})
	require.NoError(t, err)
	assert.True(t, running.Running())

	ended, err := c.End(&params.End{MeetingID: "weekly-sync", Password: "mp"})
	require.NoError(t, err)
	assert.True(t, ended.OK())

	// The stub sets an affinity cookie on every response.
	assert.Equal(t, bbbtest.SessionToken, c.SessionToken())
}

func TestEndToEndChecksumRejection(t *testing.T) {
	srv := bbbtest.New("supersecret")
	defer srv.Close()

	c, err := bbb.New(srv.URL(), "wrong-secret")
	require.NoError(t, err)

	resp, err := c.GetMeetings()
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.True(t, resp.IsChecksumError())

	ok, class := c.IsConnectionWorking()
	assert.False(t, ok)
	assert.Equal(t, bbb.FailureBadSecret, class)
}

func TestEndToEndConnectivity(t *testing.T) {
	srv := bbbtest.New("supersecret")
	defer srv.Close()

	srv.Stub("getMeetings", `<response><returncode>SUCCESS</returncode><meetings/></response>`)

	c, err := bbb.New(srv.URL(), "supersecret")
	require.NoError(t, err)

	ok, class := c.IsConnectionWorking()
	assert.True(t, ok)
	assert.Equal(t, bbb.FailureNone, class)

	v, err := c.Version()
	require.NoError(t, err)
	assert.Equal(t, "2.0", v.Version())
}

func TestEndToEndTextTracks(t *testing.T) {
	srv := bbbtest.New("supersecret")
	defer srv.Close()

	srv.StubJSON("getRecordingTextTracks", `{"response": {
	  "returncode": "SUCCESS",
	  "tracks": [
	    {"href": "https://cdn.example.org/c.vtt", "kind": "subtitles", "label": "English", "lang": "en-US", "source": "upload"}
	  ]
	}}`)
	srv.StubJSON("putRecordingTextTrack", `{"response": {"returncode": "SUCCESS", "recordId": "rec-1", "messageKey": "upload_text_track_success"}}`)

	c, err := bbb.New(srv.URL(), "supersecret")
	require.NoError(t, err)

	tracks, err := c.GetRecordingTextTracks(&params.GetRecordingTextTracks{RecordID: "rec-1"})
	require.NoError(t, err)
	require.Len(t, tracks.Tracks(), 1)
	assert.Equal(t, "English", tracks.Tracks()[0].Label())

	put, err := c.PutRecordingTextTrack(&params.PutRecordingTextTrack{
		RecordID: "rec-1",
		Kind:     "subtitles",
		Lang:     "en-US",
		File:     []byte("WEBVTT\n"),
		FileName: "captions.vtt",
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", put.RecordID())
}

func TestEndToEndHooks(t *testing.T) {
	srv := bbbtest.New("supersecret")
	defer srv.Close()

	srv.Stub("hooks/create", `<response><returncode>SUCCESS</returncode><hookID>3</hookID><permanentHook>false</permanentHook></response>`)
	srv.Stub("hooks/list", `<response>
	  <returncode>SUCCESS</returncode>
	  <hooks>
	    <hook><hookID>3</hookID><callbackURL>https://example.org/events</callbackURL></hook>
	  </hooks>
	</response>`)
	srv.Stub("hooks/destroy", `<response><returncode>SUCCESS</returncode><removed>true</removed></response>`)

	c, err := bbb.New(srv.URL(), "supersecret")
	require.NoError(t, err)

	created, err := c.CreateHook(&params.CreateHook{CallbackURL: "https://example.org/events"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.HookID())

	hooks, err := c.ListHooks(&params.ListHooks{})
	require.NoError(t, err)
	require.Len(t, hooks.Hooks(), 1)
	assert.Equal(t, "https://example.org/events", hooks.Hooks()[0].CallbackURL())

	destroyed, err := c.DestroyHook(&params.DestroyHook{HookID: 3})
	require.NoError(t, err)
	assert.True(t, destroyed.Removed())
}

func TestEndToEndSetConfigXML(t *testing.T) {
	srv := bbbtest.New("supersecret")
	defer srv.Close()

	srv.Stub("setConfigXML", `<response><returncode>SUCCESS</returncode><configToken>tok456</configToken></response>`)

	c, err := bbb.New(srv.URL(), "supersecret")
	require.NoError(t, err)

	// The stub verifies the body-borne checksum, so a SUCCESS here proves
	// the signature covered method + form body + secret.
	resp, err := c.SetConfigXML(&params.SetConfigXML{MeetingID: "weekly-sync", ConfigXML: []byte("<config/>")})
	require.NoError(t, err)
	assert.Equal(t, "tok456", resp.Token())
}
