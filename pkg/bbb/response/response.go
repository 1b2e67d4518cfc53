package response

// Wire literals for the response envelope. Every operation (except the raw
// config download) wraps its payload with a returncode and, on failure, a
// messageKey/message pair.
const (
	ReturnCodeSuccess = "SUCCESS"
	ReturnCodeFailed  = "FAILED"

	// MessageKeyChecksumError is the reserved messageKey the server returns
	// when request-signature verification fails. It is the one failure the
	// client must distinguish from domain failures like notFound.
	MessageKeyChecksumError = "checksumError"
)

// Raw is the base response wrapper embedded by every typed response. It
// exposes the envelope fields common to all operations.
type Raw struct {
	doc *Document
}

// NewRaw wraps a decoded document.
func NewRaw(doc *Document) Raw {
	return Raw{doc: doc}
}

// Doc returns the underlying document for fields a typed wrapper does not
// cover.
func (r Raw) Doc() *Document {
	return r.doc
}

// OK reports whether the call succeeded per the API's own success indicator.
func (r Raw) OK() bool {
	return r.doc.Get("returncode").String("") == ReturnCodeSuccess
}

// ReturnCode returns the raw returncode field.
func (r Raw) ReturnCode() string {
	return r.doc.Get("returncode").String("")
}

// MessageKey returns the failure classification key, or "" on success.
func (r Raw) MessageKey() string {
	return r.doc.Get("messageKey").String("")
}

// Message returns the human-readable failure message, or "" on success.
func (r Raw) Message() string {
	return r.doc.Get("message").String("")
}

// IsChecksumError reports whether the call failed signature verification.
// Distinct from domain failures: a FAILED response with messageKey notFound
// is not a checksum error.
func (r Raw) IsChecksumError() bool {
	return !r.OK() && r.MessageKey() == MessageKeyChecksumError
}
