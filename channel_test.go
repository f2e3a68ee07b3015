package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelJoinIsIdempotent(t *testing.T) {
	ch := NewChannel("#room")
	s := NewSession(1)

	ch.Join("alice", s)
	ch.Join("alice", s)

	require.Len(t, ch.MemberNicks(), 1)
	require.True(t, ch.HasMember("alice"))
}

func TestChannelRemove(t *testing.T) {
	ch := NewChannel("#room")
	s := NewSession(1)
	ch.Join("alice", s)

	ch.Remove("alice")

	require.False(t, ch.HasMember("alice"))
}

func TestChannelRenameMemberPreservesSessionHandle(t *testing.T) {
	ch := NewChannel("#room")
	s := NewSession(1)
	ch.Join("alice", s)

	ch.renameMember("alice", "alicia")

	require.False(t, ch.HasMember("alice"))
	require.True(t, ch.HasMember("alicia"))

	sessions := ch.MemberSessions()
	require.Len(t, sessions, 1)
	require.Same(t, s, sessions[0])
}

func TestChannelRenameMemberNoOpWhenAbsent(t *testing.T) {
	ch := NewChannel("#room")
	ch.renameMember("ghost", "new")
	require.Empty(t, ch.MemberNicks())
}
