package models

import "errors"

// ErrorKind names a class of local validation failure
type ErrorKind string

const (
	KindInvalidStudentID  ErrorKind = "InvalidStudentId"
	KindInvalidClassCount ErrorKind = "InvalidClassCount"
	KindInvalidCredit     ErrorKind = "InvalidCredit"
	KindInvalidGrade      ErrorKind = "InvalidGrade"
	KindNoPriorCoursework ErrorKind = "NoPriorCourseworkError"
)

// ValidationError is a user-facing rejection of submitted input.
// Two ValidationErrors match under errors.Is when their kinds agree.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

func NewValidationError(kind ErrorKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

var (
	ErrInvalidStudentID  = NewValidationError(KindInvalidStudentID, "Student ID must contain only numbers and be exactly 8 digits long.")
	ErrInvalidClassCount = NewValidationError(KindInvalidClassCount, "You can only enter at least 1 and a maximum of 4 classes at a time.")
	ErrInvalidCredit     = NewValidationError(KindInvalidCredit, "Enter valid credit values")
	ErrInvalidGrade      = NewValidationError(KindInvalidGrade, "Invalid grade input")
	ErrNoPriorCoursework = NewValidationError(KindNoPriorCoursework, "Error: No prior coursework found. Cannot update GPA.")
)

// KindOf reports the validation kind carried by err, if any
func KindOf(err error) (ErrorKind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return "", false
}
