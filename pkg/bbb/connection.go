package bbb

// FailureClass classifies why a connectivity check failed.
type FailureClass int

const (
	// FailureNone: the deployment answered a signed probe successfully.
	FailureNone FailureClass = iota

	// FailureBadURL: the endpoint was unreachable or answered with
	// something other than a well-formed API response.
	FailureBadURL

	// FailureBadSecret: the endpoint answered, but rejected the request
	// signature. The base URL is right and the shared secret is not.
	FailureBadSecret
)

func (f FailureClass) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureBadURL:
		return "bad base URL"
	case FailureBadSecret:
		return "bad shared secret"
	default:
		return "unknown"
	}
}

// IsConnectionWorking probes the deployment with a signed getMeetings call
// and classifies the outcome. A checksum rejection means the secret is
// wrong; a transport failure, a parse failure, or any other error means the
// base URL is wrong or unreachable. This is the one place the client
// downgrades errors to a result value instead of propagating them.
func (c *Client) IsConnectionWorking() (bool, FailureClass) {
	resp, err := c.GetMeetings()
	if err != nil {
		return false, FailureBadURL
	}
	if resp.IsChecksumError() {
		return false, FailureBadSecret
	}
	if !resp.OK() {
		return false, FailureBadURL
	}
	return true, FailureNone
}
