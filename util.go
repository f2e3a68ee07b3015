package main

import "strings"

// joinSpace joins tokens with a single space. Used for CAP ACK lists and
// NAMES membership lists.
func joinSpace(tokens []string) string {
	return strings.Join(tokens, " ")
}
