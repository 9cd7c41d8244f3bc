// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/server"
	"github.com/boasync/boa-sync/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			err := worker.Run(gCtx)
			w.logger.Info().Str("worker", worker.Name()).Err(err).Msg("worker stopped")
			if err != nil {
				return fmt.Errorf("%s: %w", worker.Name(), err)
			}
			return nil
		})
	}

	return g.Wait()
}

type serverWorker struct {
	server server.Server
}

// NewServerWorker runs the link/webhook server.
func NewServerWorker(s server.Server) Worker {
	return &serverWorker{server: s}
}

func (w *serverWorker) Name() string { return "http-server" }

func (w *serverWorker) Run(ctx context.Context) error {
	return w.server.RunServer(ctx)
}

type syncWorker struct {
	job      service.SyncJob
	interval time.Duration
}

// NewSyncWorker runs the periodic sync job and serves webhook triggers.
func NewSyncWorker(job service.SyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, interval: interval}
}

func (w *syncWorker) Name() string { return "sync-job" }

func (w *syncWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
	return nil
}
