package chat

import (
	"strconv"
	"sync"
	"time"

	"AIChatbot_Backend/internal/llm"

	"github.com/patrickmn/go-cache"
)

const DefaultConversationID = "default"

// ConversationStore keeps the most recent turns of each conversation in
// memory. Entries expire after ttl without activity.
type ConversationStore struct {
	mu    sync.Mutex
	cache *cache.Cache
	limit int
}

func NewConversationStore(ttl time.Duration, limit int) *ConversationStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if limit <= 0 {
		limit = 10
	}
	return &ConversationStore{
		cache: cache.New(ttl, ttl/2),
		limit: limit,
	}
}

// Key scopes a client supplied conversation id to a user so two users
// sending the same sessionId never share history.
func Key(userID int64, conversationID string) string {
	if conversationID == "" {
		conversationID = DefaultConversationID
	}
	return strconv.FormatInt(userID, 10) + ":" + conversationID
}

func (s *ConversationStore) History(key string) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(key)
	if !ok {
		return nil
	}
	msgs := v.([]llm.Message)
	out := make([]llm.Message, len(msgs))
	copy(out, msgs)
	return out
}

func (s *ConversationStore) Append(key string, msgs ...llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []llm.Message
	if v, ok := s.cache.Get(key); ok {
		history = v.([]llm.Message)
	}
	history = append(append([]llm.Message(nil), history...), msgs...)
	if len(history) > s.limit {
		history = history[len(history)-s.limit:]
	}
	s.cache.SetDefault(key, history)
}

func (s *ConversationStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(key)
}

func (s *ConversationStore) Len() int {
	return s.cache.ItemCount()
}
