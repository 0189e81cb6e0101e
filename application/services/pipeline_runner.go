package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/viveknaskar/ConfessBot/application/ports/inbound"
	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/domain"
)

type pipelineRunner struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	pipeline   inbound.ConfessionPipelinePort

	mu     sync.Mutex
	active string
}

// NewPipelineRunner wraps the pipeline for callers that submit repeatedly
// (e.g. a user firing a second confession mid-flight). Invocations run
// independently on the worker pool; only the most recent one may deliver its
// result. In-flight remote calls of a superseded invocation are not aborted,
// their outcome is simply dropped.
func NewPipelineRunner(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	pipeline inbound.ConfessionPipelinePort) inbound.PipelineRunnerPort {
	return &pipelineRunner{
		logger:     logger,
		workerPool: workerPool,
		pipeline:   pipeline,
	}
}

func (r *pipelineRunner) Start(ctx context.Context, params inbound.RunPipelineParams,
	deliver func(*domain.PipelineResult, error)) (string, error) {
	invocationID := uuid.NewString()

	r.mu.Lock()
	r.active = invocationID
	r.mu.Unlock()

	err := r.workerPool.Submit(func() {
		result, runErr := r.pipeline.Run(ctx, params)

		r.mu.Lock()
		stale := r.active != invocationID
		r.mu.Unlock()

		if stale {
			r.logger.DebugWithFields("discarding superseded pipeline result", map[string]interface{}{
				"invocation_id": invocationID,
			})
			return
		}
		deliver(result, runErr)
	})
	if err != nil {
		r.logger.Error(err, "failed to submit pipeline invocation to worker pool")
		return "", err
	}

	return invocationID, nil
}

func (r *pipelineRunner) ActiveInvocation() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}
