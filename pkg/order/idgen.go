package order

import "sync"

// IDGenerator hands out sequential order identifiers starting at 1.
// Safe for concurrent use.
type IDGenerator struct {
	mu      sync.Mutex
	current int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{current: 1}
}

// Next returns the current identifier and advances the counter.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.current
	g.current++
	return id
}

// Reset returns the counter to 1. Identifiers issued before the reset
// will be issued again, so this is only safe once no earlier orders
// remain live. Intended for test isolation.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = 1
}

// defaultIDs backs orders constructed without WithID or WithIDGenerator.
var defaultIDs = NewIDGenerator()
