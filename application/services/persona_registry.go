package services

import (
	"fmt"

	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/domain"
)

type personaRegistry struct {
	personas []domain.Persona
	byID     map[string]domain.Persona
	random   outbound.RandomSource
}

// NewPersonaRegistry validates the persona set at startup: every persona must
// carry a voice id, a personality prompt and at least one fallback utterance.
func NewPersonaRegistry(personas []domain.Persona, random outbound.RandomSource) (outbound.PersonaRegistryPort, error) {
	byID := make(map[string]domain.Persona, len(personas))
	for _, p := range personas {
		if p.ID == "" {
			return nil, fmt.Errorf("persona %q has no id", p.DisplayName)
		}
		if p.VoiceID == "" {
			return nil, fmt.Errorf("persona %q has no synthesis voice", p.ID)
		}
		if p.PersonalityPrompt == "" {
			return nil, fmt.Errorf("persona %q has no personality prompt", p.ID)
		}
		if len(p.Fallbacks) == 0 {
			return nil, fmt.Errorf("persona %q has no fallback utterances", p.ID)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate persona id %q", p.ID)
		}
		byID[p.ID] = p
	}

	return &personaRegistry{
		personas: personas,
		byID:     byID,
		random:   random,
	}, nil
}

func (r *personaRegistry) Lookup(personaID string) (domain.Persona, error) {
	persona, ok := r.byID[personaID]
	if !ok {
		return domain.Persona{}, fmt.Errorf("%w: %q", domain.ErrUnknownPersona, personaID)
	}
	return persona, nil
}

func (r *personaRegistry) PickAlternate(excludingID string) (domain.Persona, error) {
	candidates := make([]domain.Persona, 0, len(r.personas))
	for _, p := range r.personas {
		if p.ID != excludingID {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return domain.Persona{}, domain.ErrNoAlternateAvailable
	}

	return candidates[r.random.Intn(len(candidates))], nil
}

func (r *personaRegistry) All() []domain.Persona {
	out := make([]domain.Persona, len(r.personas))
	copy(out, r.personas)
	return out
}
