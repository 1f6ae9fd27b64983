// Package chardef rewrites a SudachiDict char.def for Vibrato.
//
// Sudachi marks some code point ranges with the NOOOVBOW category, which
// Vibrato does not know. Range lines lose that token; a range line left with
// no category at all is dropped. Every other line is copied verbatim.
package chardef

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/record"
)

// LegacyCategory is the obsolete "no OOV backoff" marker.
const LegacyCategory = "NOOOVBOW"

// Convert copies char.def lines from r to w, stripping LegacyCategory from
// range lines. Output lines always end in "\n".
func Convert(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)

	err := record.EachLine(r, func(lineNum int, line string) error {
		if !utf8.ValidString(line) {
			return fmt.Errorf("char.def line %d: %w", lineNum, record.ErrInvalidUTF8)
		}

		out, keep := convertLine(line)
		if !keep {
			return nil
		}
		if _, err := bw.WriteString(out); err != nil {
			return fmt.Errorf("write char.def line %d: %w", lineNum, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write char.def line %d: %w", lineNum, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func convertLine(line string) (string, bool) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line, true
	}
	out, keep, isRange := NormalizeRangeLine(line)
	if !isRange {
		return line, true
	}
	return out, keep
}

// NormalizeRangeLine rewrites a code point range line such as
// "0x0041..0x005A ALPHA NOOOVBOW #A-Z" to "0x0041..0x005A ALPHA #A-Z".
//
// isRange is false when line is not a range line; out and keep are then
// meaningless. keep is false when no category token survives.
func NormalizeRangeLine(line string) (out string, keep, isRange bool) {
	body, comment, hasComment := strings.Cut(line, "#")

	tokens := strings.Fields(body)
	if len(tokens) < 2 || !IsCodepointRange(tokens[0]) {
		return "", false, false
	}

	kept := tokens[:1]
	for _, tok := range tokens[1:] {
		if tok != LegacyCategory {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 1 {
		return "", false, true
	}

	out = strings.Join(kept, " ")
	if hasComment {
		out += " #" + comment
	}
	return out, true, true
}

// IsCodepointRange reports whether tok is "0xHHHH" or "0xHHHH..0xHHHH".
func IsCodepointRange(tok string) bool {
	if start, end, ok := strings.Cut(tok, ".."); ok {
		return isHexCodepoint(start) && isHexCodepoint(end)
	}
	return isHexCodepoint(tok)
}

func isHexCodepoint(tok string) bool {
	digits, ok := strings.CutPrefix(tok, "0x")
	if !ok || digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
