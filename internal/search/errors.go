package search

import "fmt"

// UnsupportedModeError is returned when a mode has no endpoint.
type UnsupportedModeError struct {
	Mode string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported search type: %s", e.Mode)
}

func (e *UnsupportedModeError) InvalidInput() bool { return true }

// TransportError is returned when the request never produced a response.
type TransportError struct {
	Endpoint string
	Cause    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Cause)
}
func (e *TransportError) Unwrap() error   { return e.Cause }
func (e *TransportError) Transport() bool { return true }

// BackendError is returned for non-2xx responses.
type BackendError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %s: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %s", e.Status)
}

func (e *BackendError) Backend() bool { return true }

// MalformedResponseError is returned when the payload does not have the expected shape.
type MalformedResponseError struct {
	Endpoint string
	Cause    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Cause)
}
func (e *MalformedResponseError) Unwrap() error   { return e.Cause }
func (e *MalformedResponseError) Malformed() bool { return true }
