package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutboxFIFOPerRecipient(t *testing.T) {
	o := newOutbox()
	o.Send("one")
	o.Send("two")
	o.Send("three")

	for _, want := range []string{"one", "two", "three"} {
		got, ok := o.Next()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestOutboxSendNeverBlocks(t *testing.T) {
	o := newOutbox()
	for i := 0; i < 10000; i++ {
		o.Send("line")
	}
	// If Send blocked past any fixed capacity this call would hang and the
	// test would time out rather than fail cleanly.
}

func TestOutboxCloseDrainsPendingThenStops(t *testing.T) {
	o := newOutbox()
	o.Send("pending")
	o.Close()

	line, ok := o.Next()
	require.True(t, ok)
	require.Equal(t, "pending", line)

	_, ok = o.Next()
	require.False(t, ok)
}

func TestOutboxSendAfterCloseIsDropped(t *testing.T) {
	o := newOutbox()
	o.Close()
	o.Send("too late")

	_, ok := o.Next()
	require.False(t, ok)
}
