// Package record holds the CSV plumbing shared by the lexicon and
// unknown-word converters: header-less, variable-width reading, the
// per-row outcome type, and integer field validation.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Action tells Transform what to do with a converted row.
type Action int

const (
	Emit Action = iota
	Skip
)

// SkipReason names why a row produced no output.
type SkipReason string

const (
	ReasonBlank          SkipReason = "blank"
	ReasonComment        SkipReason = "comment"
	ReasonNegativeConnID SkipReason = "negative_conn_id"
)

// Result is the non-fatal outcome of converting one row. Fatal outcomes are
// reported through the error return of RowFunc instead.
type Result struct {
	Action Action
	Fields []string
	Reason SkipReason
}

// Emitted returns a Result that writes fields.
func Emitted(fields []string) Result {
	return Result{Action: Emit, Fields: fields}
}

// Skipped returns a Result that drops the row for reason.
func Skipped(reason SkipReason) Result {
	return Result{Action: Skip, Reason: reason}
}

// RowFunc converts a single record. row is 1-based. fields is reused by the
// reader after the call returns, so implementations must not retain it.
type RowFunc func(row int, fields []string) (Result, error)

// NewReader returns a csv.Reader configured for dictionary sources: no
// header, variable field count, tolerant of bare quotes.
func NewReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

// Transform streams every record of r through fn and writes emitted rows to
// w as CSV. It stops at the first read, conversion, or write error.
// table labels error messages ("lex", "unk").
func Transform(r io.Reader, w io.Writer, table string, fn RowFunc) error {
	cr := NewReader(r)
	cw := csv.NewWriter(w)

	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s row at line %d: %w", table, row, err)
		}
		if !validUTF8(fields) {
			return fmt.Errorf("failed to read %s row at line %d: %w", table, row, ErrInvalidUTF8)
		}

		res, err := fn(row, fields)
		if err != nil {
			return err
		}
		if res.Action != Emit {
			continue
		}
		if err := cw.Write(res.Fields); err != nil {
			return fmt.Errorf("failed to write %s row at line %d: %w", table, row, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s output: %w", table, err)
	}
	return nil
}

// ParseInt validates fields[idx] as a signed 32-bit integer.
func ParseInt(table string, row int, fields []string, idx int, name string) (int32, error) {
	value := strings.TrimSpace(fields[idx])
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, &RowError{Kind: BadInteger, Table: table, Row: row, Field: name, Value: value, Err: err}
	}
	return int32(n), nil
}

// Field returns fields[idx], or "" when the row is shorter.
func Field(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}

func validUTF8(fields []string) bool {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return false
		}
	}
	return true
}
