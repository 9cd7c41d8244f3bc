// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/models"
)

const triggerQueueSize = 64

type syncJob struct {
	syncService SyncService
	triggers    chan string

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a syncJob that calls syncService.SyncAll on a ticker and
// syncService.SyncItem for every triggered item. The job is idle until Start
// is called; triggers queued before that are kept.
func NewSyncJob(syncService SyncService, log *logger.Logger) SyncJob {
	return &syncJob{
		syncService: syncService,
		triggers:    make(chan string, triggerQueueSize),
		logger:      log,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		var tick <-chan time.Time
		if interval > 0 {
			t := time.NewTicker(interval)
			defer t.Stop()
			tick = t.C
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-tick:
				results := j.syncService.SyncAll(jobCtx, models.SyncOptions{})
				j.logger.Info().
					Str("func", "syncJob.Start").
					Int("items", len(results)).
					Msg("periodic sync finished")
			case itemID := <-j.triggers:
				if _, err := j.syncService.SyncItem(jobCtx, itemID, models.SyncOptions{}); err != nil {
					j.logger.Warn().Err(err).
						Str("func", "syncJob.Start").
						Str("item_id", itemID).
						Msg("triggered sync failed")
				}
			}
		}
	}()
}

// Stop implements SyncJob. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Trigger implements SyncJob. It never blocks.
func (j *syncJob) Trigger(itemID string) bool {
	select {
	case j.triggers <- itemID:
		return true
	default:
		return false
	}
}
