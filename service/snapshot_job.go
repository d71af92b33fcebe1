package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartSnapshotJob writes a snapshot every interval until ctx is
// cancelled. Each successful snapshot also truncates covered journal
// segments and advances the reclamation epoch.
func (s *OrderService) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := s.WriteSnapshot(dir); err != nil {
					s.log.Error("snapshot failed", zap.Error(err))
					continue
				}
				if n := s.AdvanceEpoch(); n > 0 {
					s.log.Debug("reclaimed retired orders", zap.Int("count", n))
				}
			}
		}
	}()
}
