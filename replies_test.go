package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatReplyTopicIsByteExact(t *testing.T) {
	line := FormatReply(ReplyTopic, ReplyParams{Client: "alice", Channel: "#room"})
	require.Equal(t, ":server 332 alice #room :STUBBED_VALUE\r\n", line)
}

func TestFormatReplyNamReplyIsByteExact(t *testing.T) {
	line := FormatReply(ReplyNamReply, ReplyParams{Client: "alice", Channel: "#room", Message: "alice"})
	require.Equal(t, ":server 353 alice = #room :alice\r\n", line)
}

func TestFormatReplyEndOfNamesIsByteExact(t *testing.T) {
	line := FormatReply(ReplyEndOfNames, ReplyParams{Client: "alice", Channel: "#room"})
	require.Equal(t, ":server 366 alice #room :End of /NAMES list\r\n", line)
}

func TestFormatReplyFillsUnsetSlotsWithStub(t *testing.T) {
	line := FormatReply(ReplyTopic, ReplyParams{Client: "alice"})
	require.Equal(t, ":server 332 alice STUBBED_VALUE :STUBBED_VALUE\r\n", line)
}

func TestFormatReplyUnknownCodeFallsBackToGenericStubLine(t *testing.T) {
	line := FormatReply(999, ReplyParams{Client: "alice"})
	require.Equal(t, ":server 999 alice :STUBBED_VALUE\r\n", line)
}

func TestFormatReplyCatalogEntryUsesProvidedFields(t *testing.T) {
	line := FormatReply(ErrNoSuchNick, ReplyParams{Client: "alice", Nick: "bob"})
	require.Equal(t, ":server 401 alice bob :No such nick/channel\r\n", line)
}
