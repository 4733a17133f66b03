package adapter

import "errors"

// Sentinel errors for the finance API's error statuses. mapHTTPError wraps
// them with the response body; callers match with errors.Is and never look
// at status codes directly.
var (
	ErrBadRequest          = errors.New("backend rejected request")
	ErrUnauthorized        = errors.New("not authenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("record conflict")
	ErrInternalServerError = errors.New("backend internal error")
)
