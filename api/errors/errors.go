package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/equinor/radix-job-dashboard/models/common"
	"github.com/equinor/radix-job-dashboard/pkg/backend"
)

type APIStatus interface {
	Status() *common.Status
}

type StatusError struct {
	ErrStatus common.Status
}

var _ error = &StatusError{}

func NotFoundMessage(kind, name string) string {
	return fmt.Sprintf("%s %s not found", kind, name)
}

func InvalidMessage(name string) string {
	return fmt.Sprintf("%s is invalid", name)
}

func UnknownMessage(err error) string {
	return err.Error()
}

// Error implements the Error interface.
func (e *StatusError) Error() string {
	return e.ErrStatus.Message
}

// Status implements the APIStatus interface.
func (e *StatusError) Status() *common.Status {
	return &e.ErrStatus
}

func NewNotFound(kind, name string) *StatusError {
	return &StatusError{
		common.Status{
			Status:  common.StatusFailure,
			Reason:  common.StatusReasonNotFound,
			Code:    http.StatusNotFound,
			Message: NotFoundMessage(kind, name),
		},
	}
}

func NewInvalid(name string) *StatusError {
	return &StatusError{
		common.Status{
			Status:  common.StatusFailure,
			Reason:  common.StatusReasonInvalid,
			Code:    http.StatusUnprocessableEntity,
			Message: InvalidMessage(name),
		},
	}
}

// NewInvalidWithReason Invalid input, with the validation error as message
func NewInvalidWithReason(name string, reason error) *StatusError {
	statusError := NewInvalid(name)
	statusError.ErrStatus.Message = fmt.Sprintf("%s: %v", statusError.ErrStatus.Message, reason)
	return statusError
}

func NewTooManyRequests(message string) *StatusError {
	return &StatusError{
		common.Status{
			Status:  common.StatusFailure,
			Reason:  common.StatusReasonTooManyRequests,
			Code:    http.StatusTooManyRequests,
			Message: message,
		},
	}
}

func NewBadGateway(err error) *StatusError {
	return &StatusError{
		common.Status{
			Status:  common.StatusFailure,
			Reason:  common.StatusReasonBadGateway,
			Code:    http.StatusBadGateway,
			Message: UnknownMessage(err),
		},
	}
}

func NewUnknown(err error) *StatusError {
	return &StatusError{
		common.Status{
			Status:  common.StatusFailure,
			Reason:  common.StatusReasonUnknown,
			Code:    http.StatusInternalServerError,
			Message: UnknownMessage(err),
		},
	}
}

func NewFromError(err error) *StatusError {
	var statusError *StatusError
	if errors.As(err, &statusError) {
		return statusError
	}
	var responseError *backend.ResponseError
	if errors.As(err, &responseError) {
		return NewBadGateway(err)
	}
	return NewUnknown(err)
}

func ReasonForError(err error) common.StatusReason {
	switch t := err.(type) {
	case APIStatus:
		return t.Status().Reason
	default:
		return common.StatusReasonUnknown
	}
}
