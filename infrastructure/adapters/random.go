package adapters

import (
	"math/rand"
	"sync"
	"time"

	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
)

type lockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns the production random source. Pipeline invocations
// may run concurrently, so access is serialized.
func NewRandomSource() outbound.RandomSource {
	return &lockedRandom{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (l *lockedRandom) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
