package birdmap

import (
	"sync"

	"github.com/agentstation/birdmap/pkg/merge"
)

// ImageUpdatedHook is called for each record whose imageUrl was written.
type ImageUpdatedHook func(change merge.Change)

type hooks struct {
	mu             sync.RWMutex
	onImageUpdated []ImageUpdatedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnImageUpdated registers a callback.
func (h *hooks) OnImageUpdated(fn ImageUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onImageUpdated = append(h.onImageUpdated, fn)
}

func (h *hooks) triggerImageUpdated(changes merge.Changes) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range changes {
		for _, fn := range h.onImageUpdated {
			fn(c)
		}
	}
}
