// Package unknown converts SudachiDict unk.def rows (per character class
// fallback entries) into the 13-column MeCab/IPADIC schema.
//
// Unknown words have no lexical identity, so base form, reading and
// pronunciation are always "*". Negative connection ids are accepted as-is.
package unknown

import (
	"io"
	"strings"
	"unicode"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/record"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/normalize"
)

const (
	table      = "unk"
	minColumns = 10

	colClass   = 0
	colLeftID  = 1
	colRightID = 2
	colCost    = 3
	colPOS     = 4
	colCType   = 8
	colCForm   = 9
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	numericNouns bool
}

// WithNumericNouns has the same meaning as lexicon.WithNumericNouns.
func WithNumericNouns(enabled bool) Option {
	return func(o *options) {
		o.numericNouns = enabled
	}
}

// Convert reads unk.def rows from r and writes converted rows to w.
// Rows whose first field starts with '#' are comments.
func Convert(r io.Reader, w io.Writer, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return record.Transform(r, w, table, func(row int, fields []string) (record.Result, error) {
		return convertRow(o, row, fields)
	})
}

func convertRow(o options, row int, fields []string) (record.Result, error) {
	if len(fields) == 0 {
		return record.Skipped(record.ReasonBlank), nil
	}
	if strings.HasPrefix(strings.TrimLeftFunc(fields[colClass], unicode.IsSpace), "#") {
		return record.Skipped(record.ReasonComment), nil
	}
	if err := record.RequireColumns(table, row, fields, minColumns); err != nil {
		return record.Result{}, err
	}

	for _, f := range []struct {
		idx  int
		name string
	}{
		{colLeftID, "left_id"},
		{colRightID, "right_id"},
		{colCost, "cost"},
	} {
		if _, err := record.ParseInt(table, row, fields, f.idx, f.name); err != nil {
			return record.Result{}, err
		}
	}

	pos := normalize.MapPOS(fields[colPOS])
	if o.numericNouns {
		pos = normalize.RefineNumeric(pos, fields[colPOS+1])
	}
	ctype, _ := normalize.CType(fields[colCType])
	cform, _ := normalize.CForm(fields[colCForm])

	return record.Emitted([]string{
		fields[colClass],
		fields[colLeftID],
		fields[colRightID],
		fields[colCost],
		pos[0], pos[1], pos[2], pos[3],
		ctype,
		cform,
		normalize.Star,
		normalize.Star,
		normalize.Star,
	}), nil
}
