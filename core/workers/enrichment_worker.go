// ABOUTME: Enrichment worker handles background refresh jobs submitted by the API layer
// ABOUTME: Provides a managed worker pool so admin-triggered refreshes don't block requests

package workers

import (
	"context"
	"sync"
	"time"

	"mlcatalog-api/core/interfaces"
)

// JobType represents the type of enrichment job
type JobType int

const (
	// JobTypeModel refreshes a single model by ID.
	JobTypeModel JobType = iota

	// JobTypeStaleSweep refreshes a batch of stale models.
	JobTypeStaleSweep
)

// EnrichmentJob represents a background enrichment request.
type EnrichmentJob struct {
	Type        JobType
	ModelID     string
	MaxAgeHours int
	Limit       int
	Context     context.Context
	ResultCh    chan<- interface{}
}

// EnrichmentWorker manages background enrichment processing
type EnrichmentWorker struct {
	service    interfaces.EnrichmentService
	logger     interfaces.Logger
	jobQueue   chan *EnrichmentJob
	maxWorkers int
	queueSize  int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// WorkerConfig holds configuration for the enrichment worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
}

// DefaultWorkerConfig returns the default worker configuration.
// Enrichment jobs are long-running and upstream-rate-limited, so the pool
// stays small.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 2,
		QueueSize:  50,
	}
}

// NewEnrichmentWorker creates a new enrichment worker
func NewEnrichmentWorker(service interfaces.EnrichmentService, logger interfaces.Logger, config WorkerConfig) *EnrichmentWorker {
	ctx, cancel := context.WithCancel(context.Background())

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}

	return &EnrichmentWorker{
		service:    service,
		logger:     logger,
		jobQueue:   make(chan *EnrichmentJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		queueSize:  config.QueueSize,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool
func (ew *EnrichmentWorker) Start() error {
	ew.mu.Lock()
	defer ew.mu.Unlock()

	if ew.running {
		return nil
	}

	for i := 0; i < ew.maxWorkers; i++ {
		ew.wg.Add(1)
		go ew.run()
	}

	ew.running = true
	return nil
}

// Stop stops the worker pool gracefully
func (ew *EnrichmentWorker) Stop() error {
	ew.mu.Lock()
	defer ew.mu.Unlock()

	if !ew.running {
		return nil
	}

	ew.cancel()
	close(ew.jobQueue)
	ew.wg.Wait()

	ew.running = false
	return nil
}

// SubmitJob submits a job to the worker pool
func (ew *EnrichmentWorker) SubmitJob(job *EnrichmentJob) error {
	ew.mu.Lock()
	if !ew.running {
		ew.mu.Unlock()
		return ErrWorkerNotRunning
	}
	ew.mu.Unlock()

	select {
	case ew.jobQueue <- job:
		return nil
	case <-time.After(5 * time.Second):
		return ErrQueueFull
	}
}

// EnrichModelAsync queues a single-model refresh without waiting for it.
// The refresh runs under the worker's lifecycle context rather than ctx;
// the request that queued it usually finishes long before the job runs.
func (ew *EnrichmentWorker) EnrichModelAsync(ctx context.Context, modelID string) error {
	return ew.SubmitJob(&EnrichmentJob{
		Type:    JobTypeModel,
		ModelID: modelID,
	})
}

// StartPeriodicSweep queues a stale sweep every interval until the worker
// stops. A sweep that cannot be queued (pool stopped, queue full) is skipped;
// the next tick tries again.
func (ew *EnrichmentWorker) StartPeriodicSweep(interval time.Duration, maxAgeHours, limit int) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				err := ew.SubmitJob(&EnrichmentJob{
					Type:        JobTypeStaleSweep,
					MaxAgeHours: maxAgeHours,
					Limit:       limit,
				})
				if err != nil {
					ew.logger.Warn("Skipping scheduled stale sweep", map[string]interface{}{
						"error": err.Error(),
					})
				}
			case <-ew.ctx.Done():
				return
			}
		}
	}()
}

// run is the main loop for each worker
func (ew *EnrichmentWorker) run() {
	defer ew.wg.Done()

	for {
		select {
		case job, ok := <-ew.jobQueue:
			if !ok {
				return
			}
			ew.processJob(job)
		case <-ew.ctx.Done():
			return
		}
	}
}

// processJob processes a single enrichment job
func (ew *EnrichmentWorker) processJob(job *EnrichmentJob) {
	ctx := job.Context
	if ctx == nil {
		ctx = ew.ctx
	}

	switch job.Type {
	case JobTypeModel:
		outcome := ew.service.EnrichOne(ctx, job.ModelID)
		if job.ResultCh != nil {
			select {
			case job.ResultCh <- outcome:
			case <-ctx.Done():
			}
		}

	case JobTypeStaleSweep:
		count, err := ew.service.EnrichStale(ctx, job.MaxAgeHours, job.Limit)
		if err != nil {
			ew.logger.Error("Stale enrichment sweep failed", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		if job.ResultCh != nil {
			select {
			case job.ResultCh <- count:
			case <-ctx.Done():
			}
		}
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
