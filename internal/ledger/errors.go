package ledger

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every error caused by bad input data.
var ErrMalformed = errors.New("malformed transaction data")

// ErrMissingColumn is the cause when a required header column is absent.
var ErrMissingColumn = errors.New("missing required column")

// ErrEmptyFile is the cause when the input has no header row.
var ErrEmptyFile = errors.New("empty file, expected a header row")

// ParseError describes a rejected CSV row or header.
type ParseError struct {
	Row    int    // 1-based CSV line, header is row 1
	Column string // empty when the whole row is bad
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column == "":
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	case errors.Is(e.Err, ErrMissingColumn):
		return fmt.Sprintf("row %d: %v %q", e.Row, e.Err, e.Column)
	default:
		return fmt.Sprintf("row %d: parsing %s %q: %v", e.Row, e.Column, e.Value, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrMalformed) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrMalformed }
