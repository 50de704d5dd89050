package errors

import "errors"

type Category string

const (
	// CategoryInvalidInput covers malformed JSON and documents of the wrong shape.
	CategoryInvalidInput Category = "invalid_input"
	// CategoryIOFailure covers opening or reading the input and writing the report.
	CategoryIOFailure       Category = "io_failure"
	CategoryInternalFailure Category = "internal_failure"
)

const (
	CodeOpenFailed    = "param_open_failed"
	CodeReadFailed    = "param_read_failed"
	CodeSyntaxInvalid = "param_syntax_invalid"
	CodeShapeInvalid  = "param_shape_invalid"
	CodeWriteFailed   = "report_write_failed"
)

type classifiedError struct {
	category Category
	code     string
	cause    error
}

func (e *classifiedError) Error() string {
	if e.cause == nil {
		return "unknown error"
	}
	return e.cause.Error()
}

func (e *classifiedError) Unwrap() error {
	return e.cause
}

func (e *classifiedError) Category() Category {
	return e.category
}

func (e *classifiedError) Code() string {
	return e.code
}

// Wrap classifies cause. The message is left untouched so the user-facing
// line stays the cause's own text.
func Wrap(cause error, category Category, code string) error {
	if cause == nil {
		return nil
	}
	return &classifiedError{
		category: category,
		code:     code,
		cause:    cause,
	}
}

func CategoryOf(err error) Category {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.category
	}
	return ""
}

func CodeOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.code
	}
	return ""
}
