package main

import (
	"fmt"
	"sync"
	"time"
)

// Session holds per-connection state. One Session exists per accepted TCP
// connection for its whole lifetime; it is shared between the reader task,
// the writer task, the user registry, and every channel the user has
// joined.
type Session struct {
	ID uint64

	mu           sync.RWMutex
	Nick         string
	User         string
	Capabilities Capability
	State        RegistrationState

	Out *outbox

	LastActivity time.Time
}

// NewSession creates a Session with its outbound queue ready to drain.
func NewSession(id uint64) *Session {
	return &Session{
		ID:           id,
		Out:          newOutbox(),
		State:        Unregistered,
		LastActivity: time.Now(),
	}
}

// nick returns the session's current nickname under its lock.
func (s *Session) nick() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Nick
}

func (s *Session) setNick(n string) {
	s.mu.Lock()
	s.Nick = n
	s.mu.Unlock()
}

func (s *Session) touch() {
	s.mu.Lock()
	s.LastActivity = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.LastActivity)
}

// send enqueues a pre-formatted wire line to this session's writer task.
// Fire-and-forget: a closed outbox silently drops it.
func (s *Session) send(line string) {
	s.Out.Send(line)
}

func (s *Session) String() string {
	return fmt.Sprintf("session#%d(%s)", s.ID, s.nick())
}
