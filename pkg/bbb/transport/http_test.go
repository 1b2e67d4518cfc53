package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportGet(t *testing.T) {
	var gotVerb, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVerb = r.Method
		if c, err := r.Cookie(SessionCookie); err == nil {
			gotCookie = c.Value
		}
		http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "node7"})
		w.Write([]byte("<response><returncode>SUCCESS</returncode></response>"))
	}))
	defer srv.Close()

	tr := NewHTTPTransport()
	resp, err := tr.Do(Request{URL: srv.URL, SessionToken: "node3"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotVerb)
	assert.Equal(t, "node3", gotCookie)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "node7", resp.SessionToken)
	assert.Contains(t, string(resp.Body), "SUCCESS")
}

func TestHTTPTransportPostBody(t *testing.T) {
	var gotVerb, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVerb = r.Method
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	tr := NewHTTPTransport()
	_, err := tr.Do(Request{
		URL:         srv.URL,
		Body:        []byte("configXML=%3Cconfig%2F%3E"),
		ContentType: "application/x-www-form-urlencoded",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotVerb)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
}

func TestHTTPTransportErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such endpoint", http.StatusNotFound)
	}))
	defer srv.Close()

	tr := NewHTTPTransport()
	resp, err := tr.Do(Request{URL: srv.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTPTransportNetworkFailure(t *testing.T) {
	tr := NewHTTPTransport(WithTimeout(500 * time.Millisecond))
	_, err := tr.Do(Request{URL: "http://127.0.0.1:1/bigbluebutton/api"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestStubReplay(t *testing.T) {
	stub := (&Stub{}).
		Respond(Response{StatusCode: 200, Body: []byte("first"), SessionToken: "abc"}).
		Fail(ErrTransport.Msg("boom"))

	resp, err := stub.Do(Request{URL: "http://example.org/api"})
	require.NoError(t, err)
	assert.Equal(t, "first", string(resp.Body))
	assert.Equal(t, "abc", resp.SessionToken)

	_, err = stub.Do(Request{URL: "http://example.org/api"})
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, "http://example.org/api", stub.LastRequest().URL)
	assert.Len(t, stub.Requests, 2)
}
