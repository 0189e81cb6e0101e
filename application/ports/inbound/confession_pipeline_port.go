package inbound

import (
	"context"

	"github.com/viveknaskar/ConfessBot/domain"
)

type RunPipelineParams struct {
	Confession string
	PersonaID  string
	Roast      bool
	// OnStage, when set, observes orchestrator state transitions. Called from
	// the invocation's own goroutine, in order.
	OnStage func(stage domain.PipelineStage)
}

// ConfessionPipelinePort turns raw confession text into voiced narration and,
// optionally, a roast. Generation failures degrade to canned text; synthesis
// failures abort the whole run.
type ConfessionPipelinePort interface {
	Run(ctx context.Context, params RunPipelineParams) (*domain.PipelineResult, error)
}
