package loader

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound = errors.New("returns file not found")
	ErrEmptyFile    = errors.New("returns file has no data rows")
	ErrParse        = errors.New("error parsing returns file")
)

// ParseError describes the offending cell, Line is 1 based and counts the header
type ParseError struct {
	Line  int
	Value string
	Err   error
}

func (pe *ParseError) Error() string {
	if pe.Value == "" {
		return fmt.Sprintf("line %d: %v", pe.Line, pe.Err)
	}
	return fmt.Sprintf("line %d: cannot parse return %q: %v", pe.Line, pe.Value, pe.Err)
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// Is lets callers match any parse failure with errors.Is(err, ErrParse)
func (pe *ParseError) Is(target error) bool {
	return target == ErrParse
}
