package convo

import (
	"errors"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/collection"
)

// ErrSessionNotFound reports an unknown or expired session id.
var ErrSessionNotFound = errors.New("session not found or expired")

const defaultSessionTTL = 30 * time.Minute

// SessionStore keeps live sessions in an in-process TTL cache and hands out
// one mutex per session id so the engine can serialize turns. Concurrent
// turns on different sessions never contend.
type SessionStore struct {
	cache *collection.Cache

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func NewSessionStore(ttl time.Duration) (*SessionStore, error) {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	cache, err := collection.NewCache(ttl, collection.WithName("convo-sessions"))
	if err != nil {
		return nil, err
	}
	return &SessionStore{
		cache: cache,
		locks: make(map[string]*sessionLock),
	}, nil
}

func (s *SessionStore) Get(id string) (*Session, error) {
	value, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session, ok := value.(*Session)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Put publishes a session. Callers hand over ownership: the stored session
// is only read or replaced under the session lock, never mutated in place.
func (s *SessionStore) Put(session *Session) {
	s.cache.Set(session.ID, session)
}

func (s *SessionStore) Delete(id string) {
	s.cache.Del(id)
}

// Lock serializes turns for one session id. The returned func releases the
// lock and drops the per-id entry once nobody waits on it.
func (s *SessionStore) Lock(id string) func() {
	s.mu.Lock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sessionLock{}
		s.locks[id] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.Lock()
	return func() {
		lock.Unlock()
		s.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}
