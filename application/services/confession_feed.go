package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viveknaskar/ConfessBot/application/ports/inbound"
	"github.com/viveknaskar/ConfessBot/domain"
)

type confessionFeed struct {
	mu          sync.Mutex
	confessions []domain.Confession
}

// NewConfessionFeed builds the in-memory feed, newest first. Seed entries let
// the page render something before the first submission; nothing survives a
// restart.
func NewConfessionFeed(seed []domain.Confession) inbound.ConfessionFeedPort {
	confessions := make([]domain.Confession, len(seed))
	copy(confessions, seed)

	return &confessionFeed{confessions: confessions}
}

func (f *confessionFeed) Add(params inbound.AddConfessionParams) domain.Confession {
	confession := domain.Confession{
		ID:        uuid.NewString(),
		Text:      params.Text,
		PersonaID: params.Persona.ID,
		Voice:     params.Persona.DisplayName,
		AudioURL:  params.AudioURL,
		CreatedAt: time.Now(),
	}

	f.mu.Lock()
	f.confessions = append([]domain.Confession{confession}, f.confessions...)
	f.mu.Unlock()

	return confession
}

func (f *confessionFeed) Like(confessionID string) (domain.Confession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.confessions {
		if f.confessions[i].ID == confessionID {
			f.confessions[i].Likes++
			return f.confessions[i], nil
		}
	}
	return domain.Confession{}, fmt.Errorf("confession %q not found", confessionID)
}

func (f *confessionFeed) List() []domain.Confession {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Confession, len(f.confessions))
	copy(out, f.confessions)
	return out
}

// SampleConfessions seeds the feed with the launch examples.
func SampleConfessions() []domain.Confession {
	return []domain.Confession{
		{
			ID:        uuid.NewString(),
			Text:      "I secretly judge people who put pineapple on pizza, but I actually love it and eat it when nobody is watching...",
			PersonaID: "morgan-freeman",
			Voice:     "Morgan Freeman",
			Likes:     42,
			CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.NewString(),
			Text:      "I pretend to understand crypto and NFTs in conversations, but I have absolutely no idea what any of it means...",
			PersonaID: "elon-musk",
			Voice:     "Elon Musk",
			Likes:     28,
			CreatedAt: time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.NewString(),
			Text:      "I use ChatGPT to write my dating app messages and it's working better than my actual personality...",
			PersonaID: "snoop-dogg",
			Voice:     "Snoop Dogg",
			Likes:     67,
			CreatedAt: time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC),
		},
	}
}
