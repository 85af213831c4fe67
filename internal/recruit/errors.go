package recruit

import (
	"errors"
	"fmt"
)

// ErrUnknownStage is returned when an interview stage outside
// first/second/final is requested.
var ErrUnknownStage = errors.New("unknown interview stage")

// InputShapeError reports a required field that is absent or malformed in a
// job requirement or company profile document. It is surfaced to the caller
// and never recovered internally.
type InputShapeError struct {
	Document string
	Field    string
	Reason   string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("%s: field %q %s", e.Document, e.Field, e.Reason)
}

// IsInputShape reports whether err is an InputShapeError.
func IsInputShape(err error) bool {
	var shapeErr *InputShapeError
	return errors.As(err, &shapeErr)
}
