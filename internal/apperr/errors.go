// Package apperr defines the error taxonomy shared by services and the HTTP
// boundary. Every Code carries a stable numeric value and the HTTP status it
// renders with.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code struct {
	Code    int
	Message string
	Status  int
}

var (
	InvalidInputValue   = Code{1000, "Invalid input value", http.StatusBadRequest}
	MethodNotAllowed    = Code{1001, "HTTP method not supported", http.StatusMethodNotAllowed}
	EntityNotFound      = Code{1002, "Requested resource not found", http.StatusNotFound}
	InternalServerError = Code{1003, "Internal server error", http.StatusInternalServerError}
	InvalidTypeValue    = Code{1004, "Invalid type value", http.StatusBadRequest}
	AccessDenied        = Code{1005, "Access denied", http.StatusForbidden}

	MemberNotFound  = Code{2000, "Member not found", http.StatusNotFound}
	DuplicateEmail  = Code{2001, "Email is already in use", http.StatusConflict}
	InvalidPassword = Code{2002, "Password does not match", http.StatusBadRequest}

	TripNotFound     = Code{3000, "Trip not found", http.StatusNotFound}
	TripAccessDenied = Code{3001, "No permission to access this trip", http.StatusForbidden}
	InvalidTripDate  = Code{3002, "Invalid trip dates", http.StatusBadRequest}

	TripDayNotFound = Code{4000, "Trip day not found", http.StatusNotFound}

	TripPlaceNotFound   = Code{5000, "Trip place not found", http.StatusNotFound}
	InvalidVisitOrder   = Code{5001, "Invalid visit order", http.StatusBadRequest}
	DuplicateVisitOrder = Code{5002, "Duplicate visit order", http.StatusConflict}

	KakaoAPIError      = Code{6000, "Kakao API call failed", http.StatusInternalServerError}
	ExternalAPITimeout = Code{6001, "External API call timed out", http.StatusRequestTimeout}

	Unauthorized = Code{7000, "Authentication required", http.StatusUnauthorized}
	InvalidToken = Code{7001, "Invalid token", http.StatusUnauthorized}
	TokenExpired = Code{7002, "Token has expired", http.StatusUnauthorized}

	MissingRequestParameter = Code{8000, "Missing request parameter", http.StatusBadRequest}
	InvalidRequestBody      = Code{8001, "Invalid request body", http.StatusBadRequest}

	TripShareNotFound      = Code{9000, "Shared trip not found", http.StatusNotFound}
	TripShareAccessDenied  = Code{9001, "Shared trip is private or expired", http.StatusForbidden}
	TripShareAlreadyExists = Code{9002, "Trip is already shared", http.StatusConflict}

	TooManyRequests = Code{9900, "Rate limit exceeded", http.StatusTooManyRequests}
)

type FieldError struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

type Error struct {
	Code   Code
	Detail string
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	msg := e.Code.Message
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code.Code, msg, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code.Code, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the client-facing text: the detail when present, else the
// code's default message.
func (e *Error) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Code.Message
}

func New(code Code) *Error {
	return &Error{Code: code}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause that is logged but never rendered to clients.
func Wrap(code Code, err error) *Error {
	return &Error{Code: code, Err: err}
}

func WithFields(code Code, fields []FieldError) *Error {
	return &Error{Code: code, Fields: fields}
}

// Internal wraps an unexpected failure, keeping an existing *Error intact.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return Wrap(InternalServerError, err)
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code.Code == code.Code
	}
	return false
}

// From returns the *Error in err's chain, or an InternalServerError wrapping err.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(InternalServerError, err)
}
