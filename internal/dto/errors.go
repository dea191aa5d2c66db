package dto

// BaseError is the JSON error envelope every failed request returns.
// Code is machine-oriented (snake_case), Message is human-readable,
// Details carries optional diagnostics, Fields names validation failures.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationError(message string, fields []FieldError) BaseError {
	return BaseError{Code: "validation_error", Message: message, Fields: fields}
}

func NewNotFoundError(message string) BaseError {
	return BaseError{Code: "not_found", Message: message}
}

func NewUnauthorizedError(message string) BaseError {
	return BaseError{Code: "unauthorized", Message: message}
}

func NewInsufficientStockError(message, details string) BaseError {
	return BaseError{Code: "insufficient_stock", Message: message, Details: details}
}

func NewInternalError(details string) BaseError {
	return BaseError{Code: "internal_error", Message: "internal server error", Details: details}
}
