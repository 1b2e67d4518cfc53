// Package apperrors provides the error system used across the client library.
// Errors form chains: a package declares root errors with New, and call sites
// derive from them with Msg/Err so callers can classify failures with
// errors.Is while still seeing the most specific message.
package apperrors

// Error is the interface implemented by all library errors. It extends the
// standard error interface with wrapping and status-code management. Methods
// return Error so derivations can be chained.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // creates a new error using current as template
	Msg(msg string) Error                  // creates a new error with message and wraps original
	MsgErr(msg string, err ...error) Error // creates error with message and wraps extra errors
	Err(err ...error) Error                // attaches additional errors to current error
	SetExpandError(bool) Error             // controls whether ErrorAll expands wrapped errors
	SetStatusCode(int) Error               // sets HTTP status code for the error
	StatusCode() int                       // returns the current status code
	ErrorAll() string                      // returns full message including wrapped errors
	UnwrapAll() []error                    // returns all wrapped errors
}
