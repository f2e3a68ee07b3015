package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryAddGetRemoveUser(t *testing.T) {
	r := NewRegistry()
	s := NewSession(1)

	r.AddUser("alice", s)
	got, ok := r.GetUser("alice")
	require.True(t, ok)
	require.Same(t, s, got)

	r.RemoveUser("alice")
	_, ok = r.GetUser("alice")
	require.False(t, ok)
}

func TestRegistryRenameUserMovesEntry(t *testing.T) {
	r := NewRegistry()
	s := NewSession(1)
	r.AddUser("alice", s)

	r.RenameUser("alice", "alicia")

	_, ok := r.GetUser("alice")
	require.False(t, ok, "old nick must no longer resolve")

	got, ok := r.GetUser("alicia")
	require.True(t, ok)
	require.Same(t, s, got)
}

func TestRegistryGetOrCreateChannelReusesExisting(t *testing.T) {
	r := NewRegistry()
	first := r.GetOrCreateChannel("#room")
	second := r.GetOrCreateChannel("#room")
	require.Same(t, first, second)
}

func TestRegistryRenameAcrossChannelsLeavesNoTraceOfOldNick(t *testing.T) {
	r := NewRegistry()
	s := NewSession(1)
	r.AddUser("alice", s)

	ch1 := r.GetOrCreateChannel("#a")
	ch2 := r.GetOrCreateChannel("#b")
	ch1.Join("alice", s)
	ch2.Join("alice", s)

	r.RenameUser("alice", "alicia")
	r.RenameAcrossChannels("alice", "alicia")

	for _, ch := range []*Channel{ch1, ch2} {
		require.False(t, ch.HasMember("alice"))
		require.True(t, ch.HasMember("alicia"))
	}
}

func TestRegistryAllUsersSnapshot(t *testing.T) {
	r := NewRegistry()
	r.AddUser("alice", NewSession(1))
	r.AddUser("bob", NewSession(2))

	all := r.AllUsers()
	require.Len(t, all, 2)
}
