package app

import (
	"sync"

	"github.com/google/uuid"
)

// guard admits one invocation of a flow at a time. The token doubles as the
// request id sent to the service.
type guard struct {
	mu    sync.Mutex
	token string
}

func (g *guard) acquire() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.token != "" {
		return "", false
	}
	g.token = uuid.NewString()
	return g.token, true
}

func (g *guard) release(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.token == token {
		g.token = ""
	}
}

func (g *guard) busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.token != ""
}
