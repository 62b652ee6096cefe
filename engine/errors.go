package engine

import (
	"errors"
)

// Reason codes surfaced to callers in conflict and invalid-request
// responses.
const (
	ReasonSlotUnavailable    = "slot_unavailable"
	ReasonUnknownWorker      = "unknown_worker"
	ReasonUnknownService     = "unknown_service"
	ReasonUnknownBusiness    = "unknown_business"
	ReasonServiceInactive    = "service_inactive"
	ReasonServiceNotAssigned = "service_not_assigned"
	ReasonDateInPast         = "date_in_past"
	ReasonMalformedDate      = "malformed_date"
	ReasonMalformedTime      = "malformed_time"
	ReasonInvalidRange       = "invalid_range"
)

// ConflictError means the requested slot is no longer free. It is always
// recoverable: the caller picks another slot and tries again.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "booking conflict: " + e.Reason
}

// InvalidRequestError means the request references rows that do not
// exist or carries malformed values. It is rejected before any lock is
// taken and is never retried.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

// IsConflict reports whether err is a slot conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsInvalidRequest reports whether err is a request validation failure.
func IsInvalidRequest(err error) bool {
	var ie *InvalidRequestError
	return errors.As(err, &ie)
}

// ErrorReason extracts the reason code from a conflict or
// invalid-request error, empty otherwise.
func ErrorReason(err error) string {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Reason
	}
	var ie *InvalidRequestError
	if errors.As(err, &ie) {
		return ie.Reason
	}
	return ""
}
