package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeMissingDescription ErrorCode = "MISSING_DESCRIPTION"
	CodeReadFailed         ErrorCode = "READ_FAILED"
	CodeWriteFailed        ErrorCode = "WRITE_FAILED"
	CodeTemplateInvalid    ErrorCode = "TEMPLATE_INVALID"
	CodeConfigInvalid      ErrorCode = "CONFIG_INVALID"
	CodeDrift              ErrorCode = "DRIFT"
	CodeInternal           ErrorCode = "INTERNAL"
)

// Sentinel errors for the expected failure modes of an index run.
var (
	ErrMissingDescription    = errors.New("tool document is missing a meta description")
	ErrDrift                 = errors.New("index content is out of date")
	ErrIndexMissing          = errors.New("index file does not exist")
	ErrPlaceholderMissing    = errors.New("template placeholder not found")
	ErrPlaceholderDuplicated = errors.New("template placeholder occurs more than once")
)

type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Op == "" {
		if msg == "" {
			return string(e.Code)
		}
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func E(code ErrorCode, op, msg string, cause error) *Error {
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    code,
		Op:      op,
		Message: msg,
		Cause:   cause,
	}
}

func Wrap(code ErrorCode, op string, err error) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		if existing.Op != "" || op == "" {
			return existing
		}
		return &Error{
			Code:    existing.Code,
			Op:      op,
			Message: existing.Message,
			Cause:   existing.Cause,
		}
	}
	return E(code, op, "", err)
}

func CodeFrom(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Code != "" {
		return domainErr.Code, true
	}
	switch {
	case errors.Is(err, ErrMissingDescription):
		return CodeMissingDescription, true
	case errors.Is(err, ErrDrift), errors.Is(err, ErrIndexMissing):
		return CodeDrift, true
	case errors.Is(err, ErrPlaceholderMissing), errors.Is(err, ErrPlaceholderDuplicated):
		return CodeTemplateInvalid, true
	default:
		return "", false
	}
}
