// Package apperr carries the three-kind error taxonomy the query
// interactor and delivery layer agree on: NotFound, Infrastructure and
// Unexpected. Nothing here is retried and nothing recovers locally beyond
// the Option/empty-list conventions already used by the repository layer.
package apperr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind int

const (
	NotFound Kind = iota
	Infrastructure
	Unexpected
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NOT_FOUND"
	case Infrastructure:
		return "INFRASTRUCTURE"
	case Unexpected:
		return "UNEXPECTED"
	default:
		return "UNKNOWN"
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// GRPCStatus lets google.golang.org/grpc/status.FromError recognise
// AppError directly, without the delivery layer having to type-switch
// on Kind itself.
func (e *AppError) GRPCStatus() *status.Status {
	switch e.Kind {
	case NotFound:
		return status.New(codes.NotFound, e.Message)
	default:
		return status.New(codes.Internal, e.Message)
	}
}

func NotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Infrastructuref(err error, format string, args ...interface{}) *AppError {
	return &AppError{Kind: Infrastructure, Message: fmt.Sprintf(format, args...), Err: err}
}

func Unexpectedf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: Unexpected, Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err (or something it wraps) is a NotFound
// AppError.
func IsNotFound(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == NotFound
}
