package dashboard

import (
	"container/list"
	"sync"
	"time"

	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/google/uuid"
)

// Session is one dashboard user's filter state. The selection is only ever handed out as a copy.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	selection  filter.Selection
	lastAccess time.Time
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() filter.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Clone()
}

// Apply applies a filter change and returns a copy of the resulting selection.
func (s *Session) Apply(change filter.Change, defaults filter.Selection) filter.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = change.Apply(s.selection, defaults)
	return s.selection.Clone()
}

func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

// SessionStore is a thread-safe LRU of sessions.
// When full, creating a session evicts the least recently used one.
type SessionStore struct {
	mu       sync.Mutex
	capacity int
	sessions map[string]*list.Element
	order    *list.List
	nowFn    func() time.Time
}

// NewSessionStore creates a session store with the given capacity.
func NewSessionStore(capacity int) *SessionStore {
	if capacity <= 0 {
		capacity = 1
	}
	return &SessionStore{
		capacity: capacity,
		sessions: make(map[string]*list.Element),
		order:    list.New(),
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Create starts a session with the given selection.
func (st *SessionStore) Create(sel filter.Selection) *Session {
	now := st.nowFn()
	sess := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		selection:  sel.Normalize(),
		lastAccess: now,
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	// Evict if at capacity
	if st.order.Len() >= st.capacity {
		if oldest := st.order.Back(); oldest != nil {
			delete(st.sessions, oldest.Value.(*Session).ID)
			st.order.Remove(oldest)
		}
	}

	st.sessions[sess.ID] = st.order.PushFront(sess)
	return sess
}

// Get returns a session and marks it as recently used.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	elem, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Move to front (most recently used)
	st.order.MoveToFront(elem)
	sess := elem.Value.(*Session)
	sess.touch(st.nowFn())
	return sess, nil
}

// Delete ends a session.
func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	elem, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	st.order.Remove(elem)
	return nil
}

// EvictIdle removes every session not accessed since cutoff and returns how many were removed.
func (st *SessionStore) EvictIdle(cutoff time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	// The list is ordered by access, so idle sessions sit at the back.
	for elem := st.order.Back(); elem != nil; {
		sess := elem.Value.(*Session)
		if !sess.LastAccess().Before(cutoff) {
			break
		}
		prev := elem.Prev()
		delete(st.sessions, sess.ID)
		st.order.Remove(elem)
		evicted++
		elem = prev
	}
	return evicted
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.order.Len()
}
