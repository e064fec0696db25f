package islamic

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Warmup fills the long-lived cache entries ahead of the first requests.
func (a *Adapters) Warmup(ctx context.Context) error {
	start := time.Now()
	logger := slog.Default().With(slog.String("job", "warmup"))
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("surah list cached", slog.Int("count", len(a.Quran.AllSurah(ctx))))
		return ctx.Err()
	})
	g.Go(func() error {
		logger.Info("daily prayers cached", slog.Int("count", len(a.Prayers.DailyPrayers(ctx))))
		return ctx.Err()
	})
	g.Go(func() error {
		logger.Info("morning-evening dzikir cached", slog.Int("count", len(a.Prayers.MorningEvening(ctx))))
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		logger.Warn("warmup interrupted", slog.String("error", err.Error()))
		return err
	}
	logger.Info("warmup finished", slog.Duration("took", time.Since(start)))
	return nil
}
