package settlement

import "sync"

// Guard hands out a per-buyer lock so that the affordability check and the
// balance mutation of concurrent settlements for the same buyer never
// interleave. Locks are created lazily and kept for the process lifetime;
// the population is bounded by the number of active buyers.
type Guard struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func NewGuard() *Guard {
	return &Guard{locks: make(map[uint64]*sync.Mutex)}
}

// Lock acquires the lock for userID and returns the release function.
func (g *Guard) Lock(userID uint64) func() {
	g.mu.Lock()
	l, ok := g.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[userID] = l
	}
	g.mu.Unlock()

	l.Lock()
	return l.Unlock
}
