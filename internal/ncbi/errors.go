package ncbi

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLine = errors.New("malformed line")
	ErrMissingColumn = errors.New("missing column")
)

// MalformedLineError reports a record with too few fields. Line is 1-based.
type MalformedLineError struct {
	Path   string
	Line   int
	Fields int
	Want   int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %d field(s), need %d", e.Path, e.Line, ErrMalformedLine, e.Fields, e.Want)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// MissingColumnError reports a required header column absent from a table.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %v %q", e.Path, ErrMissingColumn, e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }
