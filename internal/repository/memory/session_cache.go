package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionCache remembers which study sessions are known to exist so hot
// paths (websocket handshakes, uploads) skip a database round trip.
// Entries expire; a miss always falls back to the database.
type SessionCache struct {
	cache *cache.Cache
}

func NewSessionCache() *SessionCache {
	// Default expiration 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionCache{
		cache: c,
	}
}

func (r *SessionCache) MarkExists(sessionID uuid.UUID) {
	r.cache.Set(sessionID.String(), true, cache.DefaultExpiration)
}

func (r *SessionCache) Exists(sessionID uuid.UUID) bool {
	_, found := r.cache.Get(sessionID.String())
	return found
}

func (r *SessionCache) Forget(sessionID uuid.UUID) {
	r.cache.Delete(sessionID.String())
}
