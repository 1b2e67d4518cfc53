package transport

// Stub is an in-memory Transport for tests. Each call records the request
// and replays the next scripted response, or the last one when the script
// is exhausted.
type Stub struct {
	Requests  []Request
	Responses []Response
	Errs      []error
	calls     int
}

// Respond appends a scripted response with no error.
func (s *Stub) Respond(resp Response) *Stub {
	s.Responses = append(s.Responses, resp)
	s.Errs = append(s.Errs, nil)
	return s
}

// Fail appends a scripted error with an empty response.
func (s *Stub) Fail(err error) *Stub {
	s.Responses = append(s.Responses, Response{})
	s.Errs = append(s.Errs, err)
	return s
}

// Do records the request and replays the next scripted response.
func (s *Stub) Do(req Request) (Response, error) {
	s.Requests = append(s.Requests, req)
	if len(s.Responses) == 0 {
		return Response{StatusCode: 200}, nil
	}
	i := s.calls
	if i >= len(s.Responses) {
		i = len(s.Responses) - 1
	}
	s.calls++
	return s.Responses[i], s.Errs[i]
}

// LastRequest returns the most recently dispatched request, or a zero
// Request when none was made.
func (s *Stub) LastRequest() Request {
	if len(s.Requests) == 0 {
		return Request{}
	}
	return s.Requests[len(s.Requests)-1]
}

var _ Transport = &Stub{}
