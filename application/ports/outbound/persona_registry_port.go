package outbound

import "github.com/viveknaskar/ConfessBot/domain"

// PersonaRegistryPort is the read-only persona set shared by all pipeline
// invocations.
type PersonaRegistryPort interface {
	Lookup(personaID string) (domain.Persona, error)
	// PickAlternate returns a persona chosen uniformly at random from the
	// registry excluding the given one, so the roast voice is audibly distinct
	// from the narration.
	PickAlternate(excludingID string) (domain.Persona, error)
	All() []domain.Persona
}
