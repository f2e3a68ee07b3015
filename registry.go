package main

import "sync"

// Registry holds the two process-wide indexes: nickname -> session and
// channel name -> channel record. Each map is independently lock-guarded.
//
// Lock order: channel registry -> individual channel -> user registry ->
// individual session. Never hold a session lock while acquiring a channel
// lock.
type Registry struct {
	usersMu sync.RWMutex
	users   map[string]*Session

	channelsMu sync.RWMutex
	channels   map[string]*Channel
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		users:    make(map[string]*Session),
		channels: make(map[string]*Channel),
	}
}

// AddUser inserts a session into the user index under nick.
func (r *Registry) AddUser(nick string, s *Session) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()
	r.users[nick] = s
}

// RemoveUser deletes nick from the user index.
func (r *Registry) RemoveUser(nick string) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()
	delete(r.users, nick)
}

// GetUser looks up a session by nickname.
func (r *Registry) GetUser(nick string) (*Session, bool) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()
	s, ok := r.users[nick]
	return s, ok
}

// AllUsers returns a snapshot of every registered session.
func (r *Registry) AllUsers() []*Session {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()
	out := make([]*Session, 0, len(r.users))
	for _, s := range r.users {
		out = append(out, s)
	}
	return out
}

// RenameUser moves the registry entry for oldNick to newNick, atomically
// with respect to other observers of the user index.
func (r *Registry) RenameUser(oldNick, newNick string) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()
	s, ok := r.users[oldNick]
	if !ok {
		return
	}
	delete(r.users, oldNick)
	r.users[newNick] = s
}

// GetChannel looks up a channel by canonical name.
func (r *Registry) GetChannel(name string) (*Channel, bool) {
	r.channelsMu.RLock()
	defer r.channelsMu.RUnlock()
	c, ok := r.channels[name]
	return c, ok
}

// GetOrCreateChannel returns the existing channel for name, or creates and
// stores a fresh one.
func (r *Registry) GetOrCreateChannel(name string) *Channel {
	r.channelsMu.Lock()
	defer r.channelsMu.Unlock()
	c, ok := r.channels[name]
	if !ok {
		c = NewChannel(name)
		r.channels[name] = c
	}
	return c
}

// AllChannels returns a snapshot of every channel in the registry, keyed by
// canonical name.
func (r *Registry) AllChannels() map[string]*Channel {
	r.channelsMu.RLock()
	defer r.channelsMu.RUnlock()
	out := make(map[string]*Channel, len(r.channels))
	for name, c := range r.channels {
		out[name] = c
	}
	return out
}

// RenameAcrossChannels walks every channel and, where oldNick is a member,
// replaces it with newNick bound to the same session handle. After this
// call returns, no channel membership references oldNick.
func (r *Registry) RenameAcrossChannels(oldNick, newNick string) {
	for _, c := range r.AllChannels() {
		if c.HasMember(oldNick) {
			c.renameMember(oldNick, newNick)
		}
	}
}
