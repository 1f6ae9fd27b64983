// Package lexicon converts SudachiDict lexicon CSV rows into the 13-column
// MeCab/IPADIC schema read by Vibrato and jpreprocess.
//
// Input columns (0-based): 0 surface, 1 left id, 2 right id, 3 cost,
// 4 base form, 5-8 POS, 9 inflection type, 10 inflection form, 11 reading.
// Anything after column 11 is ignored.
package lexicon

import (
	"io"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/record"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/stats"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/normalize"
)

const (
	table      = "lex"
	minColumns = 11

	colSurface = 0
	colLeftID  = 1
	colRightID = 2
	colCost    = 3
	colBase    = 4
	colPOS     = 5
	colCType   = 9
	colCForm   = 10
	colReading = 11
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	numericNouns bool
}

// WithNumericNouns maps nouns whose second POS level is 数詞 or 数 to
// 名詞,数,*,* instead of the generic 名詞,一般,*,*.
func WithNumericNouns(enabled bool) Option {
	return func(o *options) {
		o.numericNouns = enabled
	}
}

// Convert reads lexicon rows from r, writes converted rows to w, and adds
// its counters to st. Rows with a negative connection id are dropped and
// counted. A structurally invalid row aborts the conversion with a
// *record.RowError. A nil st discards the counters.
func Convert(r io.Reader, w io.Writer, st *stats.Stats, opts ...Option) error {
	if st == nil {
		st = &stats.Stats{}
	}
	c := converter{stats: st}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return record.Transform(r, w, table, c.row)
}

type converter struct {
	stats *stats.Stats
	opts  options
}

func (c *converter) row(row int, fields []string) (record.Result, error) {
	if len(fields) == 0 {
		return record.Skipped(record.ReasonBlank), nil
	}
	if err := record.RequireColumns(table, row, fields, minColumns); err != nil {
		return record.Result{}, err
	}

	left, err := record.ParseInt(table, row, fields, colLeftID, "left_id")
	if err != nil {
		return record.Result{}, err
	}
	right, err := record.ParseInt(table, row, fields, colRightID, "right_id")
	if err != nil {
		return record.Result{}, err
	}
	if _, err := record.ParseInt(table, row, fields, colCost, "cost"); err != nil {
		return record.Result{}, err
	}

	if left < 0 || right < 0 {
		c.stats.SkippedNegativeConnIDs++
		return record.Skipped(record.ReasonNegativeConnID), nil
	}

	original := normalize.POS{
		normalize.TextOrStar(fields[colPOS]),
		normalize.TextOrStar(fields[colPOS+1]),
		normalize.TextOrStar(fields[colPOS+2]),
		normalize.TextOrStar(fields[colPOS+3]),
	}
	pos := normalize.MapPOS(fields[colPOS])
	if c.opts.numericNouns {
		pos = normalize.RefineNumeric(pos, fields[colPOS+1])
	}
	if pos != original {
		c.stats.NormalizedPOSRows++
	}

	ctype, fallback := normalize.CType(fields[colCType])
	if fallback {
		c.stats.FallbackCTypeRows++
	}
	cform, fallback := normalize.CForm(fields[colCForm])
	if fallback {
		c.stats.FallbackCFormRows++
	}

	base := normalize.TextOrStar(fields[colBase])
	reading := normalize.TextOrStar(record.Field(fields, colReading))

	c.stats.Written++
	return record.Emitted([]string{
		fields[colSurface],
		fields[colLeftID],
		fields[colRightID],
		fields[colCost],
		pos[0], pos[1], pos[2], pos[3],
		ctype,
		cform,
		base,
		reading,
		reading,
	}), nil
}
