// Package identity derives canonical conversation identifiers from a
// participant pair. Both members compute the same id independently, so a
// conversation never needs a negotiation round-trip to be addressed.
package identity

import (
	"errors"
	"strings"
)

// Separator joins the sorted pair. Participant ids are uuid strings and can
// never contain it.
const Separator = ":"

var (
	ErrSameParticipant  = errors.New("participants must be two distinct users")
	ErrEmptyParticipant = errors.New("participant id must not be empty")
)

// ConversationID returns the canonical id for the unordered pair {a, b}.
// It is pure, deterministic and commutative in its arguments.
func ConversationID(a, b string) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyParticipant
	}
	if a == b {
		return "", ErrSameParticipant
	}

	a, b = Pair(a, b)
	return a + Separator + b, nil
}

// Pair returns the participants in the canonical stored order.
func Pair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// Participants splits a canonical conversation id back into its pair.
func Participants(conversationID string) (string, string, bool) {
	a, b, ok := strings.Cut(conversationID, Separator)
	if !ok || a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}
