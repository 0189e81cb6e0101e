package adapters

import (
	"context"
	"fmt"
	"sync"

	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/domain"
)

// MemoryAudioStore holds artifacts in memory and hands out relative URLs
// served by the HTTP layer. Default store when no S3 bucket is configured;
// artifacts do not survive a restart, which matches the no-persistence scope.
type MemoryAudioStore struct {
	mu        sync.RWMutex
	artifacts map[string]*domain.AudioArtifact
}

func NewMemoryAudioStore() *MemoryAudioStore {
	return &MemoryAudioStore{
		artifacts: make(map[string]*domain.AudioArtifact),
	}
}

var _ outbound.AudioStorePort = (*MemoryAudioStore)(nil)

func (m *MemoryAudioStore) Save(_ context.Context, artifact *domain.AudioArtifact) (string, error) {
	m.mu.Lock()
	m.artifacts[artifact.ID] = artifact
	m.mu.Unlock()

	return "/audio/" + artifact.ID, nil
}

func (m *MemoryAudioStore) Get(artifactID string) (*domain.AudioArtifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	artifact, ok := m.artifacts[artifactID]
	if !ok {
		return nil, fmt.Errorf("audio artifact %q not found", artifactID)
	}
	return artifact, nil
}
