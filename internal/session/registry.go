package session

import (
	"context"
	"sync"
	"time"
)

// IDGenerator produces unique session identifiers.
type IDGenerator interface {
	Generate() string
}

type entry struct {
	session  *Session
	lock     chan struct{}
	lastSeen time.Time
}

// Registry keeps sessions in memory, keyed by ID.
//
// Sessions expire after ttl without a request. Expiry is evaluated lazily on
// lookup and when new sessions are created; the registry starts no
// goroutines.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	ids      IDGenerator
	now      func() time.Time
}

// NewRegistry constructs an empty Registry.
func NewRegistry(ttl time.Duration, ids IDGenerator) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		ids:      ids,
		now:      time.Now,
	}
}

// Create registers a new Anonymous session.
func (r *Registry) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	s := newSession(r.ids.Generate())
	r.sessions[s.id] = &entry{
		session:  s,
		lock:     make(chan struct{}, 1),
		lastSeen: r.now(),
	}
	return s
}

// Acquire returns the session with its request lock held. Concurrent
// Acquire calls for the same ID wait until release is called, so a session
// serves one request at a time. Waiting stops when ctx is done.
//
// release must be called exactly once; extra calls are no-ops.
func (r *Registry) Acquire(ctx context.Context, id string) (*Session, func(), error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	select {
	case e.lock <- struct{}{}:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}

	// the session may have been deleted while we waited
	r.mu.Lock()
	current, ok := r.sessions[id]
	if !ok || current != e {
		r.mu.Unlock()
		<-e.lock
		return nil, nil, ErrSessionNotFound
	}
	e.lastSeen = r.now()
	r.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			e.lastSeen = r.now()
			r.mu.Unlock()
			<-e.lock
		})
	}

	return e.session, release, nil
}

// Delete removes the session. Unknown IDs are ignored.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.expiredLocked(e) {
		delete(r.sessions, id)
		return nil, ErrSessionExpired
	}
	return e, nil
}

func (r *Registry) expiredLocked(e *entry) bool {
	// a session serving a request never expires under it
	if len(e.lock) > 0 {
		return false
	}
	return r.now().Sub(e.lastSeen) > r.ttl
}

func (r *Registry) sweepLocked() {
	for id, e := range r.sessions {
		if r.expiredLocked(e) {
			delete(r.sessions, id)
		}
	}
}
