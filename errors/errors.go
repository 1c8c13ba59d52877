package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound   = HttpError{http.StatusNotFound, errors.New("not found")}
	Duplicate  = HttpError{http.StatusConflict, errors.New("duplicate")}
	BadRequest = HttpError{http.StatusBadRequest, errors.New("bad request")}
	Forbidden  = HttpError{http.StatusForbidden, errors.New("forbidden")}
	Conflict   = HttpError{http.StatusConflict, errors.New("conflict")}
)

// HttpError is rendered as a response with the status code and no body.
type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// MessageError is rendered as a response with the status code and a {"message": ...} body.
type MessageError struct {
	Code    int
	Message string
	Err     error
}

func NewMessageError(cause HttpError, message string) MessageError {
	return MessageError{
		Code:    cause.Code,
		Message: message,
		Err:     cause,
	}
}

func (m MessageError) Unwrap() error {
	return m.Err
}

func (m MessageError) Error() string {
	return m.Message
}

type ErrorResponse struct {
	Message string `json:"message"`
}
