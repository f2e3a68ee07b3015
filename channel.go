package main

import "sync"

// Channel holds everything to do with a named multicast group.
//
// Lifecycle: created lazily on the first JOIN that references its name;
// never garbage-collected — an empty channel persists for the life of the
// process.
type Channel struct {
	Name string

	mu      sync.RWMutex
	Topic   string
	Members map[string]*Session
	Modes   map[string]struct{}
}

// NewChannel creates an empty channel record.
func NewChannel(name string) *Channel {
	return &Channel{
		Name:    name,
		Members: make(map[string]*Session),
		Modes:   make(map[string]struct{}),
	}
}

// Join inserts nick -> session into the channel's membership. Joining a
// channel the nick is already in replaces the binding with the same session
// handle; membership cardinality is unchanged (join is idempotent).
func (c *Channel) Join(nick string, s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Members[nick] = s
}

// Remove deletes nick from the channel's membership, if present.
func (c *Channel) Remove(nick string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Members, nick)
}

// HasMember reports whether nick is currently a member.
func (c *Channel) HasMember(nick string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.Members[nick]
	return ok
}

// MemberSessions returns a snapshot of the current members. Safe to range
// over after the channel lock has been released.
func (c *Channel) MemberSessions() []*Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Session, 0, len(c.Members))
	for _, sess := range c.Members {
		out = append(out, sess)
	}
	return out
}

// MemberNicks returns a snapshot of the current member nicknames.
func (c *Channel) MemberNicks() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.Members))
	for nick := range c.Members {
		out = append(out, nick)
	}
	return out
}

// renameMember moves the session presently filed under oldNick to newNick,
// preserving the same Session handle. It is a no-op if oldNick is not a
// member (the rename is driven per-channel by the dispatcher's NICK
// handler).
func (c *Channel) renameMember(oldNick, newNick string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.Members[oldNick]
	if !ok {
		return
	}
	delete(c.Members, oldNick)
	c.Members[newNick] = sess
}
