package pkg

import "net/http"

// AppError is the error envelope rendered by the HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	Details    []string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body sent to clients.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError builds a 400 carrying every violated rule.
func NewValidationError(message string, details []string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, Details: details, HTTPStatus: http.StatusBadRequest}
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Errors:  e.Details,
	}
	if e.Err != nil {
		out.Error = e.Err.Error()
	}
	return out
}
