// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

const defaultRefreshInterval = 5 * time.Minute

// RefreshWorker calls [Refresher.Refresh] on a ticker.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	onRefresh func(*models.IdentityRecord, error)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// RefreshOption customizes a [RefreshWorker].
type RefreshOption func(*RefreshWorker)

// OnRefresh is called after every refresh with its result.
func OnRefresh(fn func(*models.IdentityRecord, error)) RefreshOption {
	return func(w *RefreshWorker) { w.onRefresh = fn }
}

// NewRefreshWorker creates a worker that refreshes every interval. A zero or
// negative interval defaults to 5 minutes. The worker is idle until Start is
// called.
func NewRefreshWorker(refresher Refresher, interval time.Duration, log *logger.Logger, opts ...RefreshOption) *RefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if log == nil {
		log = logger.Nop()
	}

	w := &RefreshWorker{refresher: refresher, interval: interval, logger: log}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start stops any previously running loop, then launches a goroutine that
// refreshes on every tick. The goroutine exits when ctx is cancelled or Stop
// is called.
func (w *RefreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.tick(jobCtx)
			}
		}
	}()
}

func (w *RefreshWorker) tick(ctx context.Context) {
	identity, err := w.refresher.Refresh(ctx)
	if err != nil && ctx.Err() == nil {
		w.logger.Warn().Err(err).Str("func", "RefreshWorker.tick").Msg("refresh failed")
	}
	if w.onRefresh != nil {
		w.onRefresh(identity, err)
	}
}

// Stop cancels the loop and blocks until it has exited. Safe to call when the
// worker is not running.
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
