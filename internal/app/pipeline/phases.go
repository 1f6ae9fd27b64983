package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/chardef"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/fragment"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/lexicon"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/stats"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/unknown"
)

// runLexicon converts lex.csv plus any lexicon fragments into one output
// and accumulates the run statistics.
func (p *Pipeline) runLexicon(ctx context.Context) error {
	var st stats.Stats
	conv := func(r io.Reader, w io.Writer) error {
		return lexicon.Convert(r, w, &st, lexicon.WithNumericNouns(p.cfg.NumericNouns))
	}

	err := convertFile(p.cfg.LexIn, p.cfg.LexOut, func(r io.Reader, w io.Writer) error {
		if err := conv(r, w); err != nil {
			return err
		}
		return fragment.AppendConverted(w, p.cfg.LexAppend, conv)
	})
	if err != nil {
		return err
	}

	p.stats = st
	p.logger(ctx).LogAttrs(ctx, slog.LevelDebug, "lexicon converted",
		append([]slog.Attr{slog.Int("fragments", len(p.cfg.LexAppend))}, st.LogAttrs()...)...,
	)
	return nil
}

// runUnknown converts unk.def and appends converted unknown-word fragments.
func (p *Pipeline) runUnknown(ctx context.Context) error {
	conv := func(r io.Reader, w io.Writer) error {
		return unknown.Convert(r, w, unknown.WithNumericNouns(p.cfg.NumericNouns))
	}
	return convertFile(p.cfg.UnkIn, p.cfg.UnkOut, func(r io.Reader, w io.Writer) error {
		if err := conv(r, w); err != nil {
			return err
		}
		return fragment.AppendConverted(w, p.cfg.UnkAppend, conv)
	})
}

// runCharDef converts char.def and appends fragments verbatim.
func (p *Pipeline) runCharDef(ctx context.Context) error {
	return convertFile(p.cfg.CharIn, p.cfg.CharOut, func(r io.Reader, w io.Writer) error {
		if err := chardef.Convert(r, w); err != nil {
			return err
		}
		return fragment.AppendFiles(w, p.cfg.CharAppend)
	})
}

// runRewrite copies rewrite.def and its fragments verbatim.
func (p *Pipeline) runRewrite(ctx context.Context) error {
	return convertFile(p.cfg.RewriteIn, p.cfg.RewriteOut, func(r io.Reader, w io.Writer) error {
		if err := fragment.AppendLines(w, r); err != nil {
			return err
		}
		return fragment.AppendFiles(w, p.cfg.RewriteAppend)
	})
}
