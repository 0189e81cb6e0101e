package outbound

import (
	"context"

	"github.com/viveknaskar/ConfessBot/domain"
)

// AudioStorePort makes a synthesized artifact addressable for playback and
// download.
type AudioStorePort interface {
	Save(ctx context.Context, artifact *domain.AudioArtifact) (string, error)
}
