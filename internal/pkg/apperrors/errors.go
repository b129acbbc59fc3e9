package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidInput     = errors.New("invalid input")

	// Enrollment errors
	ErrInvalidCreditHours  = errors.New("invalid credit hours")
	ErrInvalidCourseChoice = errors.New("invalid course choice")

	// Storage errors
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Error codes attached to CustomError
const (
	CodeInvalidCreditHours  = "INVALID_CREDIT_HOURS"
	CodeInvalidCourseChoice = "INVALID_COURSE_CHOICE"
	CodePersistenceFailure  = "PERSISTENCE_FAILURE"
)

// NewInvalidCreditHoursError creates a new custom error for non-positive credit hours
func NewInvalidCreditHoursError(message string) error {
	return NewCustomError(ErrInvalidCreditHours, message).WithCode(CodeInvalidCreditHours)
}

// NewInvalidCourseChoiceError creates a new custom error for an unknown menu choice
func NewInvalidCourseChoiceError(message string) error {
	return NewCustomError(ErrInvalidCourseChoice, message).WithCode(CodeInvalidCourseChoice)
}

// NewPersistenceError wraps an I/O error raised while writing the enrollment log
func NewPersistenceError(cause error, message string) error {
	return NewCustomError(ErrPersistenceFailure, message).
		WithCode(CodePersistenceFailure).
		WithCause(cause)
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the error kind and the underlying cause to errors.Is/As
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithCause records the lower-level error that triggered this one
func (e *CustomError) WithCause(cause error) *CustomError {
	e.Cause = cause
	return e
}

// Message returns the user-facing message of err if it carries one
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
