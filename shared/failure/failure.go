// Package failure carries the HTTP status of an error from the layer that
// raised it to the response writer.
package failure

import (
	"errors"
	"net/http"
)

// Failure is an error with an HTTP status code and a client-safe message.
// Fields holds field-scoped messages keyed by the JSON field name.
type Failure struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
	cause   error
}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Failure) Unwrap() error {
	return e.cause
}

func newFailure(code int, msg string, cause error) *Failure {
	return &Failure{Code: code, Message: msg, cause: cause}
}

// BadRequest turns err into a bad request. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error(), err)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg, nil)
}

// Validation is a bad request carrying per-field messages.
func Validation(msg string, fields map[string][]string) error {
	fail := newFailure(http.StatusBadRequest, msg, nil)
	fail.Fields = fields

	return fail
}

// FieldError is a Validation failure on a single field.
func FieldError(field, msg string) error {
	return Validation(msg, map[string][]string{field: {msg}})
}

// InternalErrorFromString hides cause behind a message the client may see.
func InternalErrorFromString(msg string, cause error) error {
	return newFailure(http.StatusInternalServerError, msg, cause)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg, nil)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg, nil)
}

// PaymentRequired reports a charge the payment gateway refused.
func PaymentRequired(msg string) error {
	return newFailure(http.StatusPaymentRequired, msg, nil)
}

// BadGateway reports an upstream provider that failed or could not be reached.
func BadGateway(msg string, cause error) error {
	return newFailure(http.StatusBadGateway, msg, cause)
}

// GetCode returns the status of the outermost Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func GetFields(err error) map[string][]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}
