// Command sudachiconv converts a SudachiDict distribution into the
// MeCab/IPADIC-style files read by Vibrato and jpreprocess.
//
// Usage:
//
//	sudachiconv convert --lex-in small_lex.csv --lex-out lex.csv \
//	    --unk-in unk.def --unk-out unk.def.out \
//	    --char-in char.def --char-out char.def.out \
//	    --stats-out stats.txt [--lex-append extra.csv]... \
//	    [--rewrite-in rewrite.def --rewrite-out rewrite.def.out]
//	sudachiconv version
//
// Every flag may also be set in the YAML config (--config, CONFIG_PATH)
// or through CONVERT_* environment variables; flags win.
//
// Exit codes: 0 = success, 1 = conversion error, 2 = usage error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/app"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 2
	}

	switch args[0] {
	case "convert":
		return runConvert(args[1:], stderr)
	case "version":
		fmt.Fprintln(stdout, app.BuildVersion())
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `sudachiconv converts SudachiDict files for Vibrato.

Commands:
  convert   convert lexicon, unk.def, char.def (and optionally rewrite.def)
  version   print build information
  help      show this message

Run "sudachiconv convert -h" for the convert flags.
`)
}

func runConvert(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to YAML config file (default: $CONFIG_PATH or "+config.DefaultPath+")")
	var o overrides
	o.register(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	o.apply(fs, &cfg.Convert)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := app.Run(ctx, cfg); err != nil {
		slog.Error("conversion failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

// overrides holds the convert flags. Only flags the user actually set
// replace loaded config values.
type overrides struct {
	lexIn, lexOut         string
	unkIn, unkOut         string
	charIn, charOut       string
	statsOut              string
	rewriteIn, rewriteOut string

	lexAppend, unkAppend, charAppend, rewriteAppend stringSliceFlag

	numericNouns bool
	concurrency  int
}

func (o *overrides) register(fs *flag.FlagSet) {
	fs.StringVar(&o.lexIn, "lex-in", "", "Sudachi lexicon CSV to convert")
	fs.StringVar(&o.lexOut, "lex-out", "", "converted lexicon CSV")
	fs.StringVar(&o.unkIn, "unk-in", "", "Sudachi unk.def to convert")
	fs.StringVar(&o.unkOut, "unk-out", "", "converted unk.def")
	fs.StringVar(&o.charIn, "char-in", "", "Sudachi char.def to convert")
	fs.StringVar(&o.charOut, "char-out", "", "converted char.def")
	fs.StringVar(&o.statsOut, "stats-out", "", "conversion statistics (key=value lines)")
	fs.StringVar(&o.rewriteIn, "rewrite-in", "", "rewrite.def to copy (requires --rewrite-out)")
	fs.StringVar(&o.rewriteOut, "rewrite-out", "", "copied rewrite.def (requires --rewrite-in)")

	fs.Var(&o.lexAppend, "lex-append", "extra lexicon CSV converted after --lex-in. Can be repeated.")
	fs.Var(&o.unkAppend, "unk-append", "extra unk.def converted after --unk-in. Can be repeated.")
	fs.Var(&o.charAppend, "char-append", "extra char.def appended verbatim. Can be repeated.")
	fs.Var(&o.rewriteAppend, "rewrite-append", "extra rewrite.def appended verbatim. Can be repeated.")

	fs.BoolVar(&o.numericNouns, "numeric-nouns", false, "map numeric nouns to 名詞,数 instead of 名詞,一般")
	fs.IntVar(&o.concurrency, "concurrency", 1, "number of files converted in parallel")
}

func (o *overrides) apply(fs *flag.FlagSet, c *config.ConvertConfig) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lex-in":
			c.LexIn = o.lexIn
		case "lex-out":
			c.LexOut = o.lexOut
		case "unk-in":
			c.UnkIn = o.unkIn
		case "unk-out":
			c.UnkOut = o.unkOut
		case "char-in":
			c.CharIn = o.charIn
		case "char-out":
			c.CharOut = o.charOut
		case "stats-out":
			c.StatsOut = o.statsOut
		case "rewrite-in":
			c.RewriteIn = o.rewriteIn
		case "rewrite-out":
			c.RewriteOut = o.rewriteOut
		case "lex-append":
			c.LexAppend = o.lexAppend
		case "unk-append":
			c.UnkAppend = o.unkAppend
		case "char-append":
			c.CharAppend = o.charAppend
		case "rewrite-append":
			c.RewriteAppend = o.rewriteAppend
		case "numeric-nouns":
			c.NumericNouns = o.numericNouns
		case "concurrency":
			c.Concurrency = o.concurrency
		}
	})
}

// stringSliceFlag implements flag.Value to allow repeated flags.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}
