// Package bbbtest provides an in-process BigBlueButton API stub for tests.
// The stub verifies request checksums the way a real deployment does, sets
// a session-affinity cookie, and serves canned responses per operation, so
// client code can be exercised end to end without a conferencing server.
package bbbtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/meetkit/bbbclient/pkg/bbb/wire"
)

// SessionToken is the JSESSIONID value the stub sets on every response.
const SessionToken = "bbbtest-node-1"

const checksumErrorXML = `<response><returncode>FAILED</returncode><messageKey>checksumError</messageKey><message>You did not pass the checksum security check</message></response>`

const defaultOKXML = `<response><returncode>SUCCESS</returncode></response>`

const versionXML = `<response><returncode>SUCCESS</returncode><version>2.0</version><apiVersion>2.0</apiVersion></response>`

type stubResponse struct {
	status      int
	contentType string
	body        string
}

// Server is one stubbed deployment. Construct with New, point a client at
// URL(), and Close when done.
type Server struct {
	ts     *httptest.Server
	secret string
	alg    wire.Algorithm

	mu       sync.Mutex
	stubs    map[string]stubResponse
	requests []*http.Request
}

// New starts a stub deployment verifying checksums against secret with
// SHA-1. Operations without a registered stub answer with a bare SUCCESS
// envelope; the bare endpoint answers the version probe.
func New(secret string) *Server {
	s := &Server{
		secret: secret,
		alg:    wire.SHA1,
		stubs:  make(map[string]stubResponse),
	}
	r := chi.NewRouter()
	r.HandleFunc("/", s.handleVersion)
	r.HandleFunc("/hooks/{method}", s.handle)
	r.HandleFunc("/{method}", s.handle)
	s.ts = httptest.NewServer(r)
	return s
}

// URL returns the stub's base API endpoint.
func (s *Server) URL() string {
	return s.ts.URL
}

// Close shuts the stub down.
func (s *Server) Close() {
	s.ts.Close()
}

// Stub registers a canned XML response for one operation (wire method
// name, e.g. "getMeetings" or "hooks/list").
func (s *Server) Stub(method, body string) {
	s.StubWithContentType(method, "text/xml", body)
}

// StubJSON registers a canned JSON response for one operation.
func (s *Server) StubJSON(method, body string) {
	s.StubWithContentType(method, "application/json", body)
}

// StubWithContentType registers a canned response with an explicit content
// type.
func (s *Server) StubWithContentType(method, contentType, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[method] = stubResponse{status: http.StatusOK, contentType: contentType, body: body}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*http.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	s.setSession(w)
	w.Header().Set("Content-Type", "text/xml")
	w.Write([]byte(versionXML))
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	s.setSession(w)

	method := chi.URLParam(r, "method")
	if strings.HasPrefix(r.URL.Path, "/hooks/") {
		method = "hooks/" + method
	}

	// setConfigXML signs its POST body instead of the query string.
	signed := r.URL.RawQuery
	if method == "setConfigXML" && signed == "" {
		body, _ := io.ReadAll(r.Body)
		signed = string(body)
	}

	if !s.verify(method, signed) {
		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(checksumErrorXML))
		return
	}

	s.mu.Lock()
	stub, ok := s.stubs[method]
	s.mu.Unlock()
	if !ok {
		stub = stubResponse{status: http.StatusOK, contentType: "text/xml", body: defaultOKXML}
	}
	w.Header().Set("Content-Type", stub.contentType)
	w.WriteHeader(stub.status)
	w.Write([]byte(stub.body))
}

// verify recomputes the checksum over the query string minus the trailing
// checksum parameter. The client always appends the checksum last, which is
// also what real deployments rely on when hashing the raw query.
func (s *Server) verify(method, rawQuery string) bool {
	marker := wire.ChecksumParam + "="
	idx := strings.LastIndex(rawQuery, marker)
	if idx < 0 {
		return false
	}
	got := rawQuery[idx+len(marker):]
	qs := strings.TrimSuffix(rawQuery[:idx], "&")
	want, err := wire.Checksum(s.alg, method, qs, s.secret)
	if err != nil {
		return false
	}
	return got == want
}

func (s *Server) setSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: SessionToken, Path: "/"})
}
