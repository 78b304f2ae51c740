package databrowser

import "fmt"

// InvalidParameterError reports a query parameter that failed validation.
// No request is issued when validation fails.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%q: %s", e.Param, e.Value, e.Reason)
}

// TransportError reports a network level failure (dns, refused
// connection, timeout) before any status code was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("data browser request failed: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HttpError reports a non-2xx status from the remote API along with the
// response body it sent back.
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("data browser returned status %d: %s", e.StatusCode, e.Body)
}

// ParseError reports a response body that does not match the expected
// JSON envelope or CSV shape.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to decode response: %s", e.Reason)
	}
	return fmt.Sprintf("failed to decode response: %s: %s", e.Reason, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
