package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vbonduro/menuscan/internal/domain"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store keeps sessions in memory. Sessions idle for longer than the TTL are
// evicted lazily on the next Create or Update; onEvict receives the pages the
// evicted session still held.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	maxPages int
	onEvict  func(released []domain.Page)
	now      func() time.Time
}

func NewStore(ttl time.Duration, maxPages int, onEvict func(released []domain.Page)) *Store {
	if onEvict == nil {
		onEvict = func([]domain.Page) {}
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		maxPages: maxPages,
		onEvict:  onEvict,
		now:      time.Now,
	}
}

// Create starts a new session on the language screen and returns its id.
func (st *Store) Create() string {
	id := uuid.NewString()

	st.mu.Lock()
	released := st.evictLocked()
	st.sessions[id] = &entry{session: New(id, st.maxPages), lastSeen: st.now()}
	st.mu.Unlock()

	st.release(released)
	return id
}

// Update runs fn against the session under the store lock and refreshes its
// idle timer. It returns ErrNotFound for unknown or expired ids.
func (st *Store) Update(id string, fn func(*Session) error) error {
	st.mu.Lock()
	released := st.evictLocked()
	e, ok := st.sessions[id]
	var err error
	if !ok {
		err = ErrNotFound
	} else {
		e.lastSeen = st.now()
		err = fn(e.session)
	}
	st.mu.Unlock()

	st.release(released)
	return err
}

// View returns a snapshot of the session.
func (st *Store) View(id string) (View, error) {
	var v View
	err := st.Update(id, func(s *Session) error {
		v = s.Snapshot()
		return nil
	})
	return v, err
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) evictLocked() []domain.Page {
	if st.ttl <= 0 {
		return nil
	}
	cutoff := st.now().Add(-st.ttl)
	var released []domain.Page
	for id, e := range st.sessions {
		if e.lastSeen.Before(cutoff) {
			released = append(released, e.session.Reset()...)
			delete(st.sessions, id)
		}
	}
	return released
}

func (st *Store) release(pages []domain.Page) {
	if len(pages) > 0 {
		st.onEvict(pages)
	}
}
