package outbound

import (
	"context"

	"github.com/viveknaskar/ConfessBot/domain"
)

type GenerateResponseRequest struct {
	Confession string
	Persona    domain.Persona
	Mode       domain.GenerationMode
}

// ResponseGeneratorPort produces the persona-voiced reply or roast for a
// confession. Remote failures are absorbed into a canned fallback result, so
// an error here means the invocation itself was broken (canceled context),
// never that the remote service misbehaved.
type ResponseGeneratorPort interface {
	Generate(ctx context.Context, req GenerateResponseRequest) (domain.GenerationResult, error)
}
