package movie

import "fmt"

// Error codes carried by ServiceError. Handlers map these onto the wire
// statuses the API contract requires.
const (
	CodeMissingFields = "missingFields"
	CodeInvalidID     = "invalidId"
	CodeInvalidSeats  = "invalidSeats"
	CodeNotFound      = "notFound"
	CodeConflict      = "conflict"
	CodeInternal      = "internal"
)

// ServiceError is the error type returned by MovieService operations.
type ServiceError struct {
	Code          string
	Message       string
	MissingFields []string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
