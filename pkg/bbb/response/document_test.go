package response

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meetingsXML = `<response>
  <returncode>SUCCESS</returncode>
  <meetings>
    <meeting>
      <meetingName>Weekly Sync</meetingName>
      <meetingID>weekly-sync</meetingID>
      <createTime>1531155809613</createTime>
      <running>true</running>
      <participantCount>3</participantCount>
      <attendees>
        <attendee><fullName>Ana</fullName><role>MODERATOR</role></attendee>
        <attendee><fullName>Ben</fullName><role>VIEWER</role></attendee>
      </attendees>
    </meeting>
    <meeting>
      <meetingName>Standup</meetingName>
      <meetingID>standup</meetingID>
      <running>false</running>
    </meeting>
  </meetings>
</response>`

func TestDecodeXMLPaths(t *testing.T) {
	doc, err := DecodeXML([]byte(meetingsXML))
	require.NoError(t, err)

	assert.Equal(t, "SUCCESS", doc.Get("returncode").String(""))
	assert.Equal(t, "Weekly Sync", doc.Get("meetings.meeting.0.meetingName").String(""))
	assert.Equal(t, "Standup", doc.Get("meetings.meeting.1.meetingName").String(""))
	assert.True(t, doc.Get("meetings.meeting.0.running").Bool(false))
	assert.Equal(t, 3, doc.Get("meetings.meeting.0.participantCount").Int(0))

	meetings := doc.All("meetings.meeting")
	require.Len(t, meetings, 2)
	assert.Equal(t, "weekly-sync", meetings[0].Get("meetingID").String(""))

	attendees := meetings[0].All("attendees.attendee")
	require.Len(t, attendees, 2)
	assert.Equal(t, "Ben", attendees[1].Get("fullName").String(""))
}

func TestDecodeXMLMalformed(t *testing.T) {
	for _, body := range []string{
		"<response><returncode>SUCCESS</returncode>",
		"not xml at all",
		"",
		"<a></b>",
	} {
		_, err := DecodeXML([]byte(body))
		assert.ErrorIs(t, err, ErrParsing, "body: %q", body)
	}
}

func TestDecodeXMLMalformedPreservesBody(t *testing.T) {
	_, err := DecodeXML([]byte("<response><oops>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<response><oops>")
}

func TestDecodeJSONPaths(t *testing.T) {
	body := `{"response": {"returncode": "SUCCESS", "tracks": [
	  {"kind": "subtitles", "lang": "en-US", "label": "English"},
	  {"kind": "captions", "lang": "pt-BR", "label": "Portuguese"}
	]}}`
	doc, err := DecodeJSON([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "SUCCESS", doc.Get("returncode").String(""))
	assert.Equal(t, "en-US", doc.Get("tracks.0.lang").String(""))

	tracks := doc.All("tracks")
	require.Len(t, tracks, 2)
	assert.Equal(t, "Portuguese", tracks[1].Get("label").String(""))
}

func TestDecodeJSONMalformed(t *testing.T) {
	_, err := DecodeJSON([]byte("{\"response\": "))
	assert.ErrorIs(t, err, ErrParsing)
}

func TestValueDefaults(t *testing.T) {
	doc, err := DecodeXML([]byte("<response><returncode>SUCCESS</returncode><n>42</n><flag>TRUE</flag><when>1531155809613</when></response>"))
	require.NoError(t, err)

	assert.Equal(t, "fallback", doc.Get("missing").String("fallback"))
	assert.True(t, doc.Get("missing").Bool(true))
	assert.Equal(t, 7, doc.Get("missing").Int(7))
	assert.False(t, doc.Get("missing").Exists())

	assert.Equal(t, 42, doc.Get("n").Int(0))
	assert.True(t, doc.Get("flag").Bool(false))
	assert.Equal(t, time.Date(2018, 7, 9, 16, 23, 29, 613000000, time.UTC), doc.Get("when").Time(time.Time{}))

	// Non-coercible values fall back to the default too.
	assert.Equal(t, 9, doc.Get("returncode").Int(9))
	assert.False(t, doc.Get("returncode").Bool(false))
}
