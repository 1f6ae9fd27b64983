package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks that every required path is present, that optional paths
// are paired correctly, and that no output overwrites an input.
func (c *Config) Validate() error {
	if err := c.Convert.validate(); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	return nil
}

func (c *ConvertConfig) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"lex_in", c.LexIn},
		{"lex_out", c.LexOut},
		{"unk_in", c.UnkIn},
		{"unk_out", c.UnkOut},
		{"char_in", c.CharIn},
		{"char_out", c.CharOut},
		{"stats_out", c.StatsOut},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required paths: %s", strings.Join(missing, ", "))
	}

	if (c.RewriteIn == "") != (c.RewriteOut == "") {
		return errors.New("rewrite_in and rewrite_out must be set together")
	}
	if len(c.RewriteAppend) > 0 && !c.HasRewrite() {
		return errors.New("rewrite_append requires rewrite_in and rewrite_out")
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", c.Concurrency)
	}

	return c.validateDistinctOutputs()
}

// validateDistinctOutputs rejects runs where an output would truncate an
// input or another output. Paths are compared after filepath.Clean.
func (c *ConvertConfig) validateDistinctOutputs() error {
	inputs := map[string]string{
		filepath.Clean(c.LexIn):  "lex_in",
		filepath.Clean(c.UnkIn):  "unk_in",
		filepath.Clean(c.CharIn): "char_in",
	}
	if c.RewriteIn != "" {
		inputs[filepath.Clean(c.RewriteIn)] = "rewrite_in"
	}

	outputs := []struct {
		name string
		path string
	}{
		{"lex_out", c.LexOut},
		{"unk_out", c.UnkOut},
		{"char_out", c.CharOut},
		{"stats_out", c.StatsOut},
		{"rewrite_out", c.RewriteOut},
	}
	seen := make(map[string]string, len(outputs))
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		path := filepath.Clean(o.path)
		if in, ok := inputs[path]; ok {
			return fmt.Errorf("%s must differ from %s (%s)", o.name, in, o.path)
		}
		if prev, ok := seen[path]; ok {
			return fmt.Errorf("%s and %s point to the same file (%s)", prev, o.name, o.path)
		}
		seen[path] = o.name
	}
	return nil
}
