package service

import "sync"

// SyncGate is the default [Gate]: a switchable admission flag. Suspending it
// makes every in-flight run abort at its next slice boundary; resuming lets
// new slice requests through again.
type SyncGate struct {
	mu        sync.RWMutex
	suspended bool
}

func NewSyncGate() *SyncGate {
	return &SyncGate{}
}

func (g *SyncGate) Suspend() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.suspended = true
}

func (g *SyncGate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.suspended = false
}

func (g *SyncGate) CheckAcceptingSyncs() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.suspended {
		return ErrSyncsSuspended
	}
	return nil
}
