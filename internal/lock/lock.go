package lock

import (
	"fmt"
	"sync"
)

// Keyed is a process-scoped try-lock table. One active review per
// (repo, PR) key at a time; a second acquire is rejected, never
// queued, so triggers stay non-blocking.
type Keyed struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewKeyed() *Keyed {
	return &Keyed{held: make(map[string]bool)}
}

func Key(repo string, pr int) string {
	return fmt.Sprintf("%s#%d", repo, pr)
}

func (k *Keyed) TryAcquire(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.held[key] {
		return false
	}
	k.held[key] = true
	return true
}

func (k *Keyed) Release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}
