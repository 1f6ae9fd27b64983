// Package stats records how much normalization and filtering a lexicon
// conversion performed, and persists it as key=value lines for downstream
// tooling.
package stats

import (
	"fmt"
	"io"
	"log/slog"
)

// Stats holds lexicon conversion counters. The zero value is ready to use.
type Stats struct {
	Written                int
	SkippedNegativeConnIDs int
	NormalizedPOSRows      int
	FallbackCTypeRows      int
	FallbackCFormRows      int
}

// pairs lists the counters in their serialized order.
func (s Stats) pairs() []struct {
	key   string
	value int
} {
	return []struct {
		key   string
		value int
	}{
		{"written", s.Written},
		{"skipped_negative_conn_ids", s.SkippedNegativeConnIDs},
		{"normalized_pos_rows", s.NormalizedPOSRows},
		{"fallback_ctype_rows", s.FallbackCTypeRows},
		{"fallback_cform_rows", s.FallbackCFormRows},
	}
}

// WriteTo writes one key=value line per counter to w.
func (s Stats) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range s.pairs() {
		n, err := fmt.Fprintf(w, "%s=%d\n", p.key, p.value)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write %s: %w", p.key, err)
		}
	}
	return total, nil
}

// LogAttrs returns the counters as slog attributes under the same keys.
func (s Stats) LogAttrs() []slog.Attr {
	pairs := s.pairs()
	attrs := make([]slog.Attr, 0, len(pairs))
	for _, p := range pairs {
		attrs = append(attrs, slog.Int(p.key, p.value))
	}
	return attrs
}
