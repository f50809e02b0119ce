package dialog

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/model"
	"github.com/s21platform/dialog-service/internal/pkg/identity"
)

// Session is one signed-in participant's sync context: the live
// conversation list, at most one open message stream and the send
// coordinator. All three share a manager, so neither subscription slot can
// outlive the session.
type Session struct {
	ParticipantID string

	Conversations *ConversationStore
	Messages      *MessageStream
	Sender        *SendCoordinator

	remote  RemoteStore
	manager *Manager
}

func NewSession(participantID string, remote RemoteStore, logger logger_lib.LoggerInterface) *Session {
	manager := NewManager()

	return &Session{
		ParticipantID: participantID,
		Conversations: NewConversationStore(remote, manager, logger),
		Messages:      NewMessageStream(remote, manager, logger),
		Sender:        NewSendCoordinator(remote, logger),
		remote:        remote,
		manager:       manager,
	}
}

// Start opens the conversation slot for the session lifetime.
func (s *Session) Start(ctx context.Context) error {
	return s.Conversations.Start(ctx, s.ParticipantID)
}

// OpenConversation resolves the canonical id for the companion, creates the
// conversation on first contact and switches the message stream to it.
func (s *Session) OpenConversation(ctx context.Context, companionID string) (string, error) {
	conversationID, err := ensureConversation(ctx, s.remote, s.ParticipantID, companionID)
	if err != nil {
		return "", err
	}

	if err := s.Messages.Open(ctx, conversationID); err != nil {
		return "", err
	}

	return conversationID, nil
}

// Send goes through the coordinator with this session's identity.
func (s *Session) Send(ctx context.Context, conversationID, text string) error {
	return s.Sender.Send(ctx, conversationID, s.ParticipantID, text)
}

// Close tears both subscription slots down. Idempotent.
func (s *Session) Close() {
	s.Messages.Close()
	s.Conversations.Stop()
}

// ensureConversation derives the canonical id for the pair and performs the
// create-if-absent write. Both participants end up on the same record no
// matter who made first contact.
func ensureConversation(ctx context.Context, remote RemoteStore, participantID, companionID string) (string, error) {
	conversationID, err := identity.ConversationID(participantID, companionID)
	if err != nil {
		return "", err
	}

	a, b := identity.Pair(participantID, companionID)
	err = remote.EnsureConversation(ctx, &model.Conversation{
		ID:           conversationID,
		ParticipantA: a,
		ParticipantB: b,
		CreatedBy:    participantID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to ensure conversation: %w", err)
	}

	return conversationID, nil
}
