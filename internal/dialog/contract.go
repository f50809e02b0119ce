//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package dialog

import (
	"context"

	"github.com/s21platform/dialog-service/internal/model"
)

// RemoteStore is the whole surface the sync core consumes from the document
// store: query+subscribe, point read, create-if-absent and merge-write.
type RemoteStore interface {
	SubscribeConversations(ctx context.Context, participantID string) (ConversationFeed, error)
	SubscribeMessages(ctx context.Context, conversationID string) (MessageFeed, error)
	GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error)
	EnsureConversation(ctx context.Context, conversation *model.Conversation) error
	SaveMessage(ctx context.Context, message *model.Message) error
	SetLastMessage(ctx context.Context, conversationID string, preview model.LastMessage) error
}

// ConversationFeed delivers the live result set of one participant's
// conversations. Updates carries whole batches in the store's
// acknowledgment order. Close is idempotent.
type ConversationFeed interface {
	Updates() <-chan model.ConversationList
	Err() <-chan error
	Close()
}

// MessageFeed delivers the live result set of one conversation's messages.
type MessageFeed interface {
	Updates() <-chan model.MessageList
	Err() <-chan error
	Close()
}

// EventPublisher pushes refreshed views out to the realtime gateway.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, data interface{}) error
}
