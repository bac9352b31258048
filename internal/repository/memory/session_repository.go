package memory

import (
	"sync"
	"time"

	"codebiruni-be/pkg/chatbot"

	"github.com/patrickmn/go-cache"
)

// maxTurns caps how much history a session can accumulate; the engine only
// ever looks at the tail anyway.
const maxTurns = 20

// SessionRepository keeps per-session chat history in process memory.
// Sessions are advisory: losing one only loses conversational context.
type SessionRepository struct {
	cache *cache.Cache

	// Serializes Append's read-modify-write; the cache alone only makes the
	// individual Get and Set safe.
	mu sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, expired sessions purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Get(sessionID string) ([]chatbot.Turn, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.([]chatbot.Turn), true
	}
	return nil, false
}

// Append records a user/assistant exchange and refreshes the session TTL.
func (r *SessionRepository) Append(sessionID, userMessage, reply string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, _ := r.Get(sessionID)

	// Fresh slice so earlier Get callers never see their history mutated
	// under them.
	updated := make([]chatbot.Turn, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		chatbot.Turn{Role: "user", Content: userMessage},
		chatbot.Turn{Role: "assistant", Content: reply},
	)
	if len(updated) > maxTurns {
		updated = updated[len(updated)-maxTurns:]
	}
	r.cache.Set(sessionID, updated, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
