package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"arbiter/internal/db"
)

const janitorInterval = time.Hour

// janitor drops sessions that have been idle longer than maxIdle.
type janitor struct {
	store   *db.Store
	maxIdle time.Duration
	log     *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newJanitor(store *db.Store, maxIdle time.Duration, log *zap.Logger) *janitor {
	return &janitor{store: store, maxIdle: maxIdle, log: log}
}

func (j *janitor) Start(ctx context.Context) {
	if j.maxIdle <= 0 {
		return
	}
	ctx, j.cancel = context.WithCancel(ctx)
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			j.sweep(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (j *janitor) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
	j.wg.Wait()
}

func (j *janitor) sweep(ctx context.Context) {
	n, err := j.store.PruneSessions(ctx, time.Now().Add(-j.maxIdle))
	if err != nil {
		if ctx.Err() == nil {
			j.log.Warn("prune sessions", zap.Error(err))
		}
		return
	}
	if n > 0 {
		j.log.Info("pruned idle sessions", zap.Int64("count", n))
	}
}
