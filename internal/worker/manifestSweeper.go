package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ManifestFS interface {
	SweepOlderThan(cutoff time.Time) (int, error)
}

// ManifestSweeper deletes generated manifests older than the TTL on a ticker.
// A zero TTL disables it entirely, which keeps the historical behavior of
// never cleaning the temp directory.
type ManifestSweeper struct {
	store  ManifestFS
	logger *zap.Logger
	ttl    time.Duration
}

func NewManifestSweeper(logger *zap.Logger, store ManifestFS, ttl time.Duration) *ManifestSweeper {
	return &ManifestSweeper{
		store:  store,
		logger: logger,
		ttl:    ttl,
	}
}

func (s *ManifestSweeper) Run(ctx context.Context) {
	if s.ttl <= 0 {
		s.logger.Info("manifest sweeper disabled")
		return
	}

	s.logger.Info("manifest sweeper running", zap.Duration("ttl", s.ttl))
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.store.SweepOlderThan(time.Now().Add(-s.ttl))
			if err != nil {
				s.logger.Error("cannot sweep manifests", zap.Error(err))
				continue
			}
			if removed > 0 {
				s.logger.Info("swept manifests", zap.Int("count", removed))
			}
		}
	}
}
