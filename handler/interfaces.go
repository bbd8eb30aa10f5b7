package handler

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/handler_mocks.go -package=mocks

// JobHandler handles background job orchestration.
type JobHandler interface {
	StartIngestJob(ctx context.Context) error
	StartQueueJob(ctx context.Context) error
	StartRewriteJob(ctx context.Context) error
	Stop() error
}

// JobScheduler handles periodic job scheduling and coordination.
type JobScheduler interface {
	Schedule(ctx context.Context, jobName string, interval time.Duration, jobFunc func(context.Context) error) error
	Stop(jobName string) error
	StopAll() error
	GetJobStatus(jobName string) (JobStatus, error)
}

// JobStatus represents the status of a scheduled job.
type JobStatus struct {
	LastError  error
	LastRun    *string
	NextRun    *string
	Name       string
	ErrorCount int
	IsRunning  bool
}
