package model

import (
	"time"
)

type ConversationList []Conversation

// Conversation is one two-party channel. Participants are stored as the
// sorted pair the canonical id is derived from, so both members resolve
// the same record.
type Conversation struct {
	ID           string       `db:"id" json:"id"`
	ParticipantA string       `db:"participant_a" json:"participant_a"`
	ParticipantB string       `db:"participant_b" json:"participant_b"`
	CreatedBy    string       `db:"created_by" json:"created_by"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	LastMessage  *LastMessage `json:"last_message,omitempty"`
}

// LastMessage is the rolling preview shown in the conversation list. It is
// never authoritative for the message stream itself.
type LastMessage struct {
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// Companion returns the other member of the pair.
func (c Conversation) Companion(participantID string) string {
	if c.ParticipantA == participantID {
		return c.ParticipantB
	}
	return c.ParticipantA
}
