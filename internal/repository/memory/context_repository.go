package memory

import (
	"time"

	"legal-assist-be/pkg/conversation"

	"github.com/patrickmn/go-cache"
)

// ContextRepository keeps one conversation.Context per chat session.
// Entries expire after an hour of inactivity so abandoned sessions do not
// pin memory; a fresh context is transparently created on next access.
type ContextRepository struct {
	cache *cache.Cache
}

func NewContextRepository() *ContextRepository {
	return &ContextRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Get returns the context for a session, creating it when absent. Access
// refreshes the expiration window.
func (r *ContextRepository) Get(sessionID string) *conversation.Context {
	if x, found := r.cache.Get(sessionID); found {
		ctx := x.(*conversation.Context)
		r.cache.Set(sessionID, ctx, cache.DefaultExpiration)
		return ctx
	}
	ctx := conversation.NewContext()
	r.cache.Set(sessionID, ctx, cache.DefaultExpiration)
	return ctx
}

// Reset empties the context for a session without recreating it.
func (r *ContextRepository) Reset(sessionID string) {
	r.Get(sessionID).Reset()
}

func (r *ContextRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
