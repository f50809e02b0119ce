package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

// Message is immutable once written: sent_at is assigned by the store on
// the durable append and is the stream ordering key.
type Message struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ConversationID string    `db:"conversation_id" json:"conversation_id"`
	SenderID       string    `db:"sender_id" json:"sender_id"`
	Text           string    `db:"content" json:"content"`
	SentAt         time.Time `db:"sent_at" json:"sent_at"`
}
