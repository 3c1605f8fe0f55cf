package finassist

import "sync"

// Generations orders overlapping fetches of the same view. The dashboard can
// fire a new request while an older one is still retrying; without ordering,
// whichever resolves last would win. Each fetch takes a generation number
// before starting and offers it back with its result: only results newer
// than the last accepted one are applied, stale ones are dropped.
type Generations struct {
	mu       sync.Mutex
	issued   uint64
	accepted uint64
}

// Next issues the generation for a new fetch.
func (g *Generations) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return g.issued
}

// Accept reports whether a result of the given generation is still current,
// and marks it as the latest applied one when it is.
func (g *Generations) Accept(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen <= g.accepted {
		return false
	}
	g.accepted = gen
	return true
}
