package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleCapabilityLS(t *testing.T) {
	s := NewSession(1)
	line := handleCapability(s, ParseCommand("CAP LS"))
	require.Equal(t, "CAP * LS :multi-prefix sasl echo-message\r\n", line)
}

func TestHandleCapabilityREQAcksKnownLabels(t *testing.T) {
	s := NewSession(1)
	line := handleCapability(s, ParseCommand("CAP REQ :multi-prefix :sasl"))
	require.Equal(t, "CAP * ACK ::multi-prefix :sasl\r\n", line)
	require.True(t, s.Capabilities.Has(CapMultiPrefix))
	require.True(t, s.Capabilities.Has(CapSASL))
	require.False(t, s.Capabilities.Has(CapEchoMessage))
}

func TestHandleCapabilityREQNaksWhenNothingMatches(t *testing.T) {
	s := NewSession(1)
	line := handleCapability(s, ParseCommand("CAP REQ :bogus"))
	require.Equal(t, "CAP * NAK :No valid capabilities\r\n", line)
}

func TestHandleCapabilityENDRegistersSession(t *testing.T) {
	s := NewSession(1)
	require.Equal(t, Unregistered, s.State)

	line := handleCapability(s, ParseCommand("CAP END"))
	require.Equal(t, "", line)
	require.Equal(t, Registered, s.State)
}

func TestHandleCapabilityUnknownNaks(t *testing.T) {
	s := NewSession(1)
	line := handleCapability(s, ParseCommand("NICK alice"))
	require.Equal(t, "CAP * NAK :Invalid command\r\n", line)
}
