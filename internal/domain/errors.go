package domain

import (
	"fmt"
	"net/http"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// EmptyQuestionMessage is the validation message for a blank question.
const EmptyQuestionMessage = "question cannot be empty"

// IsEmptyQuestion reports whether the error rejects a blank question.
func (e *ValidationErr) IsEmptyQuestion() bool {
	return e.message == EmptyQuestionMessage
}

// ConfigurationErr is returned when an endpoint cannot be used because its
// base URL or token is missing.
type ConfigurationErr struct {
	domainErr
}

// NewConfigurationErr creates a new ConfigurationErr with the given message.
func NewConfigurationErr(message string) *ConfigurationErr {
	return &ConfigurationErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamTimeoutErr is returned when a model call exceeds its deadline.
type UpstreamTimeoutErr struct {
	domainErr
}

// NewUpstreamTimeoutErr creates a new UpstreamTimeoutErr with the given message.
func NewUpstreamTimeoutErr(message string) *UpstreamTimeoutErr {
	return &UpstreamTimeoutErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamStatusErr is returned when the model endpoint answers with a non-2xx status.
type UpstreamStatusErr struct {
	domainErr
	StatusCode int
	Detail     string
}

// NewUpstreamStatusErr creates a new UpstreamStatusErr for the given status code and detail.
func NewUpstreamStatusErr(statusCode int, detail string) *UpstreamStatusErr {
	if detail == "" {
		detail = http.StatusText(statusCode)
	}
	return &UpstreamStatusErr{
		domainErr:  domainErr{message: fmt.Sprintf("model request failed: %s", detail)},
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// UpstreamTransportErr wraps network failures other than timeouts.
type UpstreamTransportErr struct {
	domainErr
	cause error
}

// NewUpstreamTransportErr creates a new UpstreamTransportErr wrapping cause.
func NewUpstreamTransportErr(cause error) *UpstreamTransportErr {
	return &UpstreamTransportErr{
		domainErr: domainErr{message: fmt.Sprintf("model request failed: %v", cause)},
		cause:     cause,
	}
}

// Unwrap returns the underlying network error.
func (e *UpstreamTransportErr) Unwrap() error {
	return e.cause
}

// EmptyReplyErr is returned when the model answered successfully with no content.
type EmptyReplyErr struct {
	domainErr
}

// NewEmptyReplyErr creates a new EmptyReplyErr.
func NewEmptyReplyErr() *EmptyReplyErr {
	return &EmptyReplyErr{
		domainErr: domainErr{message: "model returned an empty reply"},
	}
}

// InternalErr wraps any unexpected failure of the solve workflow.
type InternalErr struct {
	domainErr
	cause error
}

// NewInternalErr creates a new InternalErr wrapping cause.
func NewInternalErr(cause error) *InternalErr {
	return &InternalErr{
		domainErr: domainErr{message: fmt.Sprintf("solve service error: %v", cause)},
		cause:     cause,
	}
}

// Unwrap returns the wrapped error.
func (e *InternalErr) Unwrap() error {
	return e.cause
}
