package record

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the row converters.
var (
	ErrMalformedRow = errors.New("malformed row")
	ErrInvalidUTF8  = errors.New("invalid UTF-8")
)

// RowErrorKind distinguishes the structural failures a row can have.
type RowErrorKind int

const (
	// TooFewColumns means the row has fewer fields than the schema minimum.
	TooFewColumns RowErrorKind = iota
	// BadInteger means a field required to be integral failed to parse.
	BadInteger
)

// RowError describes a fatal, row-level schema violation.
// Row is the 1-based record number within the input.
type RowError struct {
	Kind   RowErrorKind
	Table  string // "lex" or "unk"
	Row    int
	Field  string
	Value  string
	Want   int
	Got    int
	Err    error
}

func (e *RowError) Error() string {
	switch e.Kind {
	case TooFewColumns:
		return fmt.Sprintf("invalid %s row at line %d: expected >=%d columns, got %d", e.Table, e.Row, e.Want, e.Got)
	case BadInteger:
		return fmt.Sprintf("failed to parse %s='%s' at line %d", e.Field, e.Value, e.Row)
	default:
		return fmt.Sprintf("invalid %s row at line %d", e.Table, e.Row)
	}
}

// Unwrap exposes both the ErrMalformedRow sentinel and the parse cause.
func (e *RowError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedRow}
	}
	return []error{ErrMalformedRow, e.Err}
}

// RequireColumns returns a TooFewColumns error if fields is shorter than want.
func RequireColumns(table string, row int, fields []string, want int) error {
	if len(fields) >= want {
		return nil
	}
	return &RowError{Kind: TooFewColumns, Table: table, Row: row, Want: want, Got: len(fields)}
}
