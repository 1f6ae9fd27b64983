// Package fragment appends supplementary definition files after the
// converted primary output, either verbatim (char.def, rewrite.def) or
// through one of the row converters (unk.def, lexicon CSV).
package fragment

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/record"
)

// ConvertFunc streams one input through a converter.
type ConvertFunc func(r io.Reader, w io.Writer) error

// AppendLines copies r to w line by line. A trailing CR is removed and every
// line, including an unterminated last one, is written with "\n".
func AppendLines(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriter(w)
	err := record.EachLine(r, func(_ int, line string) error {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// AppendFiles appends each file in paths to w with AppendLines, in order.
func AppendFiles(w io.Writer, paths []string) error {
	return forEachFile(paths, func(r io.Reader) error {
		return AppendLines(w, r)
	})
}

// AppendConverted runs each file in paths through conv, writing to w.
func AppendConverted(w io.Writer, paths []string, conv ConvertFunc) error {
	return forEachFile(paths, func(r io.Reader) error {
		return conv(r, w)
	})
}

func forEachFile(paths []string, fn func(io.Reader) error) error {
	for _, path := range paths {
		if err := withFile(path, fn); err != nil {
			return err
		}
	}
	return nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open fragment: %w", err)
	}
	defer f.Close()

	if err := fn(NewReader(f)); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// NewReader wraps r so that a leading UTF-8 byte order mark is dropped.
// Input without a BOM passes through unchanged.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}
