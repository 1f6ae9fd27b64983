package config

// Config is the root configuration of the converter.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Convert ConvertConfig `yaml:"convert"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ConvertConfig holds the input/output paths of one conversion run and the
// options passed to the converters.
type ConvertConfig struct {
	LexIn    string `yaml:"lex_in"    env:"CONVERT_LEX_IN"`
	LexOut   string `yaml:"lex_out"   env:"CONVERT_LEX_OUT"`
	UnkIn    string `yaml:"unk_in"    env:"CONVERT_UNK_IN"`
	UnkOut   string `yaml:"unk_out"   env:"CONVERT_UNK_OUT"`
	CharIn   string `yaml:"char_in"   env:"CONVERT_CHAR_IN"`
	CharOut  string `yaml:"char_out"  env:"CONVERT_CHAR_OUT"`
	StatsOut string `yaml:"stats_out" env:"CONVERT_STATS_OUT"`

	// RewriteIn and RewriteOut are optional but must be set together.
	RewriteIn  string `yaml:"rewrite_in"  env:"CONVERT_REWRITE_IN"`
	RewriteOut string `yaml:"rewrite_out" env:"CONVERT_REWRITE_OUT"`

	LexAppend     []string `yaml:"lex_append"     env:"CONVERT_LEX_APPEND"     env-separator:","`
	UnkAppend     []string `yaml:"unk_append"     env:"CONVERT_UNK_APPEND"     env-separator:","`
	CharAppend    []string `yaml:"char_append"    env:"CONVERT_CHAR_APPEND"    env-separator:","`
	RewriteAppend []string `yaml:"rewrite_append" env:"CONVERT_REWRITE_APPEND" env-separator:","`

	NumericNouns bool `yaml:"numeric_nouns" env:"CONVERT_NUMERIC_NOUNS" env-default:"false"`
	Concurrency  int  `yaml:"concurrency"   env:"CONVERT_CONCURRENCY"   env-default:"1"`
}

// HasRewrite reports whether the rewrite.def copy step is configured.
func (c ConvertConfig) HasRewrite() bool {
	return c.RewriteIn != "" && c.RewriteOut != ""
}
