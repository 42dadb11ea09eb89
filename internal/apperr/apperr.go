package apperr

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Code identifies the kind of a platform error. Handlers and services return
// *Error values carrying one of these codes; the HTTP layer maps them to
// status codes and a structured JSON body.
type Code string

const (
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeInternal     Code = "INTERNAL"
)

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	// Fields carries per-field validation messages, keyed by the JSON
	// field name of the offending input.
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message string) *Error   { return New(CodeBadRequest, message) }
func Unauthorized(message string) *Error { return New(CodeUnauthorized, message) }
func NotFound(message string) *Error     { return New(CodeNotFound, message) }
func Conflict(message string) *Error     { return New(CodeConflict, message) }
func Internal(message string) *Error     { return New(CodeInternal, message) }

// Validation builds a BAD_REQUEST error with per-field messages.
func Validation(fields map[string]string) *Error {
	return &Error{
		Code:    CodeBadRequest,
		Message: "Validation failed.",
		Fields:  fields,
	}
}

func httpStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorHandler renders every error as {code, message, fields?}. Unknown
// errors are logged and reported as INTERNAL without leaking detail.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg := http.StatusText(httpErr.Code)
			if s, ok := httpErr.Message.(string); ok {
				msg = s
			}
			appErr = &Error{Code: codeForStatus(httpErr.Code), Message: msg}
		} else {
			log.Printf("unhandled error: %v", err)
			appErr = Internal("Internal server error.")
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpStatus(appErr.Code))
		return
	}
	_ = c.JSON(httpStatus(appErr.Code), appErr)
}

func codeForStatus(status int) Code {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	default:
		return CodeInternal
	}
}
