package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"luna/shared/constant"
	"luna/shared/failure"
	"luna/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every failed request. Fields is keyed by the JSON name
// of the offending input field.
type Error struct {
	Error  *string             `json:"error,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload in a data envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError writes err with the status of its Failure. Messages of server-side
// failures that are not a Failure never reach the client.
func WithError(writer http.ResponseWriter, err error) {
	body := Error{Fields: failure.GetFields(err)}

	message := constant.ResponseErrorInternal

	var fail *failure.Failure
	if errors.As(err, &fail) {
		message = fail.Message
	}

	body.Error = &message

	write(writer, failure.GetCode(err), body)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, constant.ResponseErrorInternal, http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
