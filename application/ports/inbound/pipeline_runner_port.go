package inbound

import (
	"context"

	"github.com/viveknaskar/ConfessBot/domain"
)

// PipelineRunnerPort runs pipeline invocations asynchronously. Each Start
// supersedes the previous invocation: a superseded invocation still finishes
// its remote calls, but its outcome is discarded instead of being delivered
// to stale caller state.
type PipelineRunnerPort interface {
	Start(ctx context.Context, params RunPipelineParams, deliver func(*domain.PipelineResult, error)) (invocationID string, err error)
	ActiveInvocation() string
}
