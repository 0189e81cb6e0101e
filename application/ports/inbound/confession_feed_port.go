package inbound

import "github.com/viveknaskar/ConfessBot/domain"

type AddConfessionParams struct {
	Text     string
	Persona  domain.Persona
	AudioURL string
}

// ConfessionFeedPort is the in-memory, newest-first confession feed.
type ConfessionFeedPort interface {
	Add(params AddConfessionParams) domain.Confession
	Like(confessionID string) (domain.Confession, error)
	List() []domain.Confession
}
