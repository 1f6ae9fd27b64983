package app

import (
	"context"
	"log/slog"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/app/pipeline"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/config"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/stats"
)

// Run initializes the logger and executes one conversion described by cfg.
// cfg must already be validated. The returned Stats are also persisted to
// cfg.Convert.StatsOut.
func Run(ctx context.Context, cfg *config.Config) (stats.Stats, error) {
	logger := NewLogger(cfg.Log)

	logger.Info("starting conversion",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("concurrency", cfg.Convert.Concurrency),
	)

	p := pipeline.New(logger, cfg.Convert)
	if err := p.Run(ctx); err != nil {
		return stats.Stats{}, err
	}
	return p.Stats(), nil
}
