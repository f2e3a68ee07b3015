package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommandCap(t *testing.T) {
	require.Equal(t, CmdCapLs, ParseCommand("CAP LS").Kind)
	require.Equal(t, CmdCapEnd, ParseCommand("CAP END").Kind)

	req := ParseCommand("CAP REQ :multi-prefix :sasl")
	require.Equal(t, CmdCapReq, req.Kind)
	require.Equal(t, []string{":multi-prefix", ":sasl"}, req.CapList)
}

func TestParseCommandCapIsCaseInsensitive(t *testing.T) {
	require.Equal(t, CmdCapLs, ParseCommand("cap ls").Kind)
	require.Equal(t, CmdCapEnd, ParseCommand("Cap End").Kind)
}

func TestParseCommandNickUser(t *testing.T) {
	nick := ParseCommand("NICK alice")
	require.Equal(t, CmdNick, nick.Kind)
	require.Equal(t, "alice", nick.Nick)

	user := ParseCommand("USER alice")
	require.Equal(t, CmdUser, user.Kind)
	require.Equal(t, "alice", user.User)

	require.Equal(t, CmdUnknown, ParseCommand("NICK").Kind)
	require.Equal(t, CmdUnknown, ParseCommand("USER").Kind)
}

func TestParseCommandJoin(t *testing.T) {
	cmd := ParseCommand("JOIN #room")
	require.Equal(t, CmdJoin, cmd.Kind)
	require.Equal(t, "#room", cmd.Channel)

	require.Equal(t, CmdUnknown, ParseCommand("JOIN").Kind)
}

func TestParseCommandPing(t *testing.T) {
	cmd := ParseCommand("PING abc123")
	require.Equal(t, CmdPing, cmd.Kind)
	require.Equal(t, "abc123", cmd.Token)
}

func TestParseCommandPrivmsgStripsLeadingColonAndJoinsWithSpaces(t *testing.T) {
	cmd := ParseCommand("PRIVMSG #room :hello   there")
	require.Equal(t, CmdPrivmsg, cmd.Kind)
	require.Equal(t, "#room", cmd.Target)
	require.Equal(t, "hello there", cmd.Text)
}

func TestParseCommandPrivmsgWithoutColon(t *testing.T) {
	cmd := ParseCommand("PRIVMSG bob hi")
	require.Equal(t, CmdPrivmsg, cmd.Kind)
	require.Equal(t, "bob", cmd.Target)
	require.Equal(t, "hi", cmd.Text)
}

func TestParseCommandPrivmsgMissingTargetOrTextIsUnknown(t *testing.T) {
	require.Equal(t, CmdUnknown, ParseCommand("PRIVMSG").Kind)
	require.Equal(t, CmdUnknown, ParseCommand("PRIVMSG bob").Kind)
	require.Equal(t, CmdUnknown, ParseCommand("PRIVMSG bob :").Kind)
}

func TestParseCommandNamesOptionalChannel(t *testing.T) {
	withChan := ParseCommand("NAMES #room")
	require.Equal(t, CmdNames, withChan.Kind)
	require.True(t, withChan.HasChan)
	require.Equal(t, "#room", withChan.Channel)

	bare := ParseCommand("NAMES")
	require.Equal(t, CmdNames, bare.Kind)
	require.False(t, bare.HasChan)
}

func TestParseCommandQuit(t *testing.T) {
	require.Equal(t, CmdQuit, ParseCommand("QUIT").Kind)
}

func TestParseCommandUnknownForGarbageAndEmpty(t *testing.T) {
	require.Equal(t, CmdUnknown, ParseCommand("").Kind)
	require.Equal(t, CmdUnknown, ParseCommand("   ").Kind)
	require.Equal(t, CmdUnknown, ParseCommand("FROBNICATE abc").Kind)
}

func TestParseCommandTotality(t *testing.T) {
	// Parser totality: every input produces exactly one
	// command value, never a panic.
	inputs := []string{"", " ", "\t", "CAP", "CAP FOO", "NICK  ", "a b c d e f"}
	for _, in := range inputs {
		require.NotPanics(t, func() {
			ParseCommand(in)
		})
	}
}
