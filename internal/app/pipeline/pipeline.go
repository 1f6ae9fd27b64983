// Package pipeline runs one SudachiDict -> Vibrato conversion: it opens the
// configured files, streams each through its converter, appends fragments,
// and persists the lexicon statistics.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/config"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/stats"
	"github.com/kakavo-dev/vibrato-sudachidict/pkg/ctxutil"
)

// Phase names, in canonical order.
const (
	PhaseLexicon = "lexicon"
	PhaseUnknown = "unknown"
	PhaseCharDef = "chardef"
	PhaseRewrite = "rewrite"
)

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Duration time.Duration
	Err      error
}

type phase struct {
	name string
	run  func(ctx context.Context) error
}

// Pipeline orchestrates the conversion phases of one run.
// A Pipeline is single-use.
type Pipeline struct {
	log   *slog.Logger
	cfg   config.ConvertConfig
	runID uuid.UUID

	mu      sync.Mutex
	results map[string]PhaseResult

	// stats is written only by the lexicon phase and read after Run's
	// errgroup has been waited on.
	stats stats.Stats
}

// New creates a Pipeline for cfg, which must already be validated.
func New(log *slog.Logger, cfg config.ConvertConfig) *Pipeline {
	runID := uuid.New()
	return &Pipeline{
		log:     log,
		cfg:     cfg,
		runID:   runID,
		results: make(map[string]PhaseResult),
	}
}

// RunID identifies this run in logs.
func (p *Pipeline) RunID() uuid.UUID {
	return p.runID
}

// Results returns a copy of the phase results recorded so far.
func (p *Pipeline) Results() map[string]PhaseResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]PhaseResult, len(p.results))
	for k, v := range p.results {
		out[k] = v
	}
	return out
}

// Stats returns the lexicon statistics. Valid after Run returns nil.
func (p *Pipeline) Stats() stats.Stats {
	return p.stats
}

// Run executes every configured phase, at most cfg.Concurrency at a time,
// and writes the statistics file once all of them succeeded. The first
// failing phase cancels the phases that have not started yet.
func (p *Pipeline) Run(ctx context.Context) error {
	ctx = ctxutil.WithRunID(ctx, p.runID)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.Concurrency, 1))

	phases := p.phases()
	for _, ph := range phases {
		g.Go(func() error {
			return p.runPhase(gctx, ph)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeFile(p.cfg.StatsOut, func(w io.Writer) error {
		_, err := p.stats.WriteTo(w)
		return err
	}); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	p.logger(ctx).LogAttrs(ctx, slog.LevelInfo, "conversion completed",
		append([]slog.Attr{slog.Int("phases_run", len(phases))}, p.stats.LogAttrs()...)...,
	)
	return nil
}

func (p *Pipeline) phases() []phase {
	phases := []phase{
		{PhaseLexicon, p.runLexicon},
		{PhaseUnknown, p.runUnknown},
		{PhaseCharDef, p.runCharDef},
	}
	if p.cfg.HasRewrite() {
		phases = append(phases, phase{PhaseRewrite, p.runRewrite})
	}
	return phases
}

func (p *Pipeline) runPhase(ctx context.Context, ph phase) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx = ctxutil.WithPhase(ctx, ph.name)
	log := p.logger(ctx)

	start := time.Now()
	log.Info("starting phase")

	err := ph.run(ctx)
	result := PhaseResult{Duration: time.Since(start), Err: err}

	p.mu.Lock()
	p.results[ph.name] = result
	p.mu.Unlock()

	if err != nil {
		log.Warn("phase failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", result.Duration),
		)
		return fmt.Errorf("%s: %w", ph.name, err)
	}

	log.Info("phase completed", slog.Duration("duration", result.Duration))
	return nil
}

// logger returns p.log annotated with the run ID and phase found in ctx.
func (p *Pipeline) logger(ctx context.Context) *slog.Logger {
	log := p.log
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}
	if phase := ctxutil.PhaseFromCtx(ctx); phase != "" {
		log = log.With(slog.String("phase", phase))
	}
	return log
}
