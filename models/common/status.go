package common

// StatusType Status of an API call
type StatusType string

const (
	// StatusSuccess The API call succeeded
	StatusSuccess StatusType = "Success"
	// StatusFailure The API call failed
	StatusFailure StatusType = "Failure"
)

// StatusReason Reason for the status of an API call
type StatusReason string

const (
	// StatusReasonUnknown means the server has declined to indicate a specific reason.
	StatusReasonUnknown StatusReason = ""

	// StatusReasonNotFound means one or more resources required for this operation
	// could not be found.
	StatusReasonNotFound StatusReason = "NotFound"

	// StatusReasonInvalid means the requested create or update operation cannot be
	// completed due to invalid data provided as part of the request.
	StatusReasonInvalid StatusReason = "Invalid"

	// StatusReasonTooManyRequests means the server experienced too many requests within a
	// given window and that the client must wait to perform the action again.
	StatusReasonTooManyRequests StatusReason = "TooManyRequests"

	// StatusReasonBadGateway means the external job backend could not serve the request.
	StatusReasonBadGateway StatusReason = "BadGateway"
)

// Status is a return value for calls that don't return other objects or when a request returns an error
// swagger:model Status
type Status struct {
	// Status of the operation.
	// One of: "Success" or "Failure".
	// example: Failure
	Status StatusType `json:"status,omitempty"`

	// A human-readable description of the status of this operation.
	// required: false
	// example: job 1234 not found
	Message string `json:"message,omitempty"`

	// A machine-readable description of why this operation is in the
	// "Failure" status. If this value is empty there
	// is no information available.
	// required: false
	// example: NotFound
	Reason StatusReason `json:"reason,omitempty"`

	// Suggested HTTP return code for this status, 0 if not set.
	// required: false
	// example: 404
	Code int `json:"code,omitempty"`
}
