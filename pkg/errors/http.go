package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
