package assistant

import "sync"

// gate is the one-shot rendezvous for an external confirmation decision.
// At most one confirmation is ever outstanding; decisions arriving while
// nothing is pending are dropped.
type gate struct {
	mu      sync.Mutex
	waiting bool
	ch      chan bool
}

func (g *gate) arm() <-chan bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ch = make(chan bool, 1)
	g.waiting = true
	return g.ch
}

func (g *gate) disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.waiting = false
	g.ch = nil
}

// resolve delivers a decision to the armed gate. Returns false when no
// confirmation was pending.
func (g *gate) resolve(v bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.waiting {
		return false
	}
	g.waiting = false
	g.ch <- v
	return true
}
