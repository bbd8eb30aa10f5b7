// ABOUTME: This file wires the background job loops for ingest, queue and rewrite
// ABOUTME: The rewrite loop waits for the model health gate before starting
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"autonews/config"
	"autonews/service"
)

// Job names used with the scheduler.
const (
	jobNameIngest  = "feed-ingest"
	jobNameQueue   = "queue-process"
	jobNameRewrite = "ai-rewrite"
)

type jobHandler struct {
	ingest        service.IngestService
	processor     service.QueueProcessorService
	rewriter      service.RewriteService
	healthChecker service.HealthCheckerService
	scheduler     JobScheduler
	config        *config.Config
	logger        *slog.Logger
}

// NewJobHandler creates a new job handler.
func NewJobHandler(
	ingest service.IngestService,
	processor service.QueueProcessorService,
	rewriter service.RewriteService,
	healthChecker service.HealthCheckerService,
	scheduler JobScheduler,
	cfg *config.Config,
	logger *slog.Logger,
) JobHandler {
	return &jobHandler{
		ingest:        ingest,
		processor:     processor,
		rewriter:      rewriter,
		healthChecker: healthChecker,
		scheduler:     scheduler,
		config:        cfg,
		logger:        logger,
	}
}

// StartIngestJob starts the periodic feed ingestion loop.
func (h *jobHandler) StartIngestJob(ctx context.Context) error {
	return h.scheduler.Schedule(ctx, jobNameIngest, h.config.Ingest.JobInterval, func(jobCtx context.Context) error {
		outcomes, err := h.ingest.FetchAllDue(jobCtx)
		if err != nil {
			return err
		}

		var enqueued, errored int

		for _, o := range outcomes {
			enqueued += o.Enqueued

			if o.Error != "" {
				errored++
			}
		}

		h.logger.InfoContext(jobCtx, "ingest job pass finished",
			"sources", len(outcomes),
			"enqueued", enqueued,
			"errored_sources", errored)

		return nil
	})
}

// StartQueueJob starts the periodic queue draining loop.
func (h *jobHandler) StartQueueJob(ctx context.Context) error {
	return h.scheduler.Schedule(ctx, jobNameQueue, h.config.Queue.JobInterval, func(jobCtx context.Context) error {
		_, err := h.processor.ProcessBatch(jobCtx)
		return err
	})
}

// StartRewriteJob starts the rewrite loop once the model is reachable.
func (h *jobHandler) StartRewriteJob(ctx context.Context) error {
	if err := h.healthChecker.WaitForHealthy(ctx); err != nil {
		return fmt.Errorf("rewriter never became healthy: %w", err)
	}

	return h.scheduler.Schedule(ctx, jobNameRewrite, h.config.Rewriter.JobInterval, func(jobCtx context.Context) error {
		_, err := h.rewriter.ProcessPending(jobCtx)
		return err
	})
}

// Stop stops all job loops.
func (h *jobHandler) Stop() error {
	h.logger.Info("stopping background jobs")
	return h.scheduler.StopAll()
}
