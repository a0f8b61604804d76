package worker

import (
	"context"
	"fmt"
	"time"

	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"go.uber.org/zap"
)

// DefaultSnapshotInterval es cada cuánto se respaldan los conteos.
const DefaultSnapshotInterval = 30 * time.Second

// Counter da los totales de la plataforma; lo implementa *stats.Service.
type Counter interface {
	Platform(ctx context.Context) (stats.Platform, error)
}

// Snapshot registra periódicamente cuántos usuarios y mascotas hay.
type Snapshot struct {
	counter  Counter
	metrics  *metrics.Metrics
	interval time.Duration
}

func NewSnapshot(c Counter, m *metrics.Metrics, interval time.Duration) *Snapshot {
	if interval <= 0 {
		interval = DefaultSnapshotInterval
	}
	return &Snapshot{counter: c, metrics: m, interval: interval}
}

// Run bloquea hasta que se cancela ctx. El primer respaldo sale después del
// primer intervalo; un error no corta el loop.
func (s *Snapshot) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Get(ctx).Info("snapshot job started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Get(ctx).Info("snapshot job stopped")
			return
		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				logger.Get(ctx).Error("snapshot failed", zap.Error(err))
			}
		}
	}
}

func (s *Snapshot) RunOnce(ctx context.Context) error {
	st, err := s.counter.Platform(ctx)
	if err != nil {
		s.metrics.SnapshotFailed()
		return fmt.Errorf("count platform data: %w", err)
	}

	s.metrics.Snapshot(st.TotalUsers, st.TotalPets)
	logger.Get(ctx).Info("data snapshot taken",
		zap.Int("users", st.TotalUsers),
		zap.Int("pets", st.TotalPets),
	)
	return nil
}
