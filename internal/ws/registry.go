package ws

import (
	"sync"

	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
)

// Registry maps a user to the single connection they were last registered
// on. It lives for the process and is rebuilt as clients re-register.
type Registry struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]notification.Connection
}

func NewRegistry() *Registry {
	return &Registry{byUser: make(map[uuid.UUID]notification.Connection)}
}

// Register inserts or overwrites the entry for userID. Last writer wins.
func (r *Registry) Register(userID uuid.UUID, conn notification.Connection) {
	if r == nil || userID == uuid.Nil || conn == nil {
		return
	}
	r.mu.Lock()
	r.byUser[userID] = conn
	r.mu.Unlock()
}

func (r *Registry) Lookup(userID uuid.UUID) (notification.Connection, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	conn, ok := r.byUser[userID]
	r.mu.RUnlock()
	return conn, ok
}

// Unregister removes every entry whose stored connection is conn and
// reports how many were removed. A stale conn that was overwritten by a
// newer registration removes nothing.
func (r *Registry) Unregister(conn notification.Connection) int {
	if r == nil || conn == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for userID, c := range r.byUser {
		if c == conn {
			delete(r.byUser, userID)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}
