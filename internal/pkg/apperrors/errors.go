package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course input errors. Each one wraps ErrValidationFailed so callers that only care
// about "was the input bad" can match the generic sentinel.
var (
	ErrIncompleteInput = &CustomError{Err: ErrValidationFailed, Message: "incomplete course information", Code: "INCOMPLETE_INPUT"}
	ErrInvalidCredits  = &CustomError{Err: ErrValidationFailed, Message: "credits must be greater than 0", Code: "INVALID_CREDITS"}
	ErrInvalidScore    = &CustomError{Err: ErrValidationFailed, Message: "score must be between 0 and 100", Code: "INVALID_SCORE"}
)

// Course list state errors
var (
	ErrCourseNotFound           = &CustomError{Err: ErrResourceNotFound, Message: "course not found", Code: "NOT_FOUND"}
	ErrNoActiveEdit             = errors.New("no course is being edited")
	ErrCannotDeleteWhileEditing = errors.New("course is being edited and cannot be deleted")
)

// Calculation errors
var (
	ErrNoCourses         = errors.New("no courses to calculate")
	ErrNetworkFailure    = errors.New("calculation service unreachable")
	ErrCalculationFailed = errors.New("calculation failed")
	ErrZeroCredits       = &CustomError{Err: ErrBadRequest, Message: "total credits is zero", Code: "ZERO_CREDITS"}
	ErrValuesOutOfRange  = NewCustomError(ErrBadRequest, "course values are too large to calculate").WithCode("OUT_OF_RANGE")
)

// userMessages holds the text shown to the user for each failure.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrIncompleteInput, "Please fill in the course name, credits and score"},
	{ErrInvalidCredits, "Credits must be greater than 0"},
	{ErrInvalidScore, "Score must be between 0 and 100"},
	{ErrCourseNotFound, "That course no longer exists"},
	{ErrNoActiveEdit, "No course is being edited"},
	{ErrCannotDeleteWhileEditing, "A course cannot be deleted while it is being edited"},
	{ErrNoCourses, "Please add a course first"},
	{ErrNetworkFailure, "Could not reach the GPA service, make sure the server is running"},
	{ErrCalculationFailed, "The GPA service could not calculate a result"},
}

// UserMessage returns the user-facing text for err, falling back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
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
	Message string
	Code    string
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

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
