package dialog

import (
	"context"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/model"
)

// Hub tracks one Session per signed-in participant and republishes every
// refreshed view to the realtime gateway. It is driven by the account event
// feed: signed-in starts a session, signed-out tears it down.
type Hub struct {
	lifetime  context.Context
	remote    RemoteStore
	publisher EventPublisher
	logger    logger_lib.LoggerInterface

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHub builds the hub around its own lifetime context. Sessions outlive
// the events that start them, so feed subscriptions and publishes run on
// the lifetime context, never on a per-event one.
func NewHub(lifetime context.Context, remote RemoteStore, publisher EventPublisher, logger logger_lib.LoggerInterface) *Hub {
	if lifetime == nil {
		lifetime = context.Background()
	}
	return &Hub{
		lifetime:  lifetime,
		remote:    remote,
		publisher: publisher,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// SignedIn starts a session for the participant. A repeated signed-in event
// for an already live session is a no-op. The event's ctx only delivers the
// event; the session itself runs on the hub's lifetime context.
func (h *Hub) SignedIn(_ context.Context, participantID string) error {
	h.mu.Lock()
	if _, ok := h.sessions[participantID]; ok {
		h.mu.Unlock()
		return nil
	}

	session := NewSession(participantID, h.remote, h.logger)
	h.sessions[participantID] = session
	h.mu.Unlock()

	session.Conversations.OnUpdate(func(list model.ConversationList) {
		h.publish(h.lifetime, participantID, list)
	})
	session.Messages.OnUpdate(func(conversationID string, list model.MessageList) {
		h.publish(h.lifetime, conversationID, list)
	})

	if err := session.Start(h.lifetime); err != nil {
		h.mu.Lock()
		delete(h.sessions, participantID)
		h.mu.Unlock()
		return err
	}

	return nil
}

// SignedOut tears the participant's session down. Unknown participants are
// a no-op, so replayed events are harmless.
func (h *Hub) SignedOut(participantID string) {
	h.mu.Lock()
	session, ok := h.sessions[participantID]
	if ok {
		delete(h.sessions, participantID)
	}
	h.mu.Unlock()

	if ok {
		session.Close()
	}
}

// Session returns the participant's live session, if any.
func (h *Hub) Session(participantID string) (*Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, ok := h.sessions[participantID]
	return session, ok
}

// OpenConversation routes through the participant's session when one is
// live, so the message stream switches too; otherwise it only resolves and
// ensures the conversation record.
func (h *Hub) OpenConversation(ctx context.Context, participantID, companionID string) (string, error) {
	if session, ok := h.Session(participantID); ok {
		return session.OpenConversation(ctx, companionID)
	}
	return ensureConversation(ctx, h.remote, participantID, companionID)
}

// Send routes through the participant's session when one is live, so a
// failed send restores that session's draft; otherwise a detached
// coordinator performs the same protocol.
func (h *Hub) Send(ctx context.Context, participantID, conversationID, text string) error {
	if session, ok := h.Session(participantID); ok {
		return session.Send(ctx, conversationID, text)
	}
	return NewSendCoordinator(h.remote, h.logger).Send(ctx, conversationID, participantID, text)
}

// Shutdown closes every live session.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	sessions := make([]*Session, 0, len(h.sessions))
	for id, session := range h.sessions {
		sessions = append(sessions, session)
		delete(h.sessions, id)
	}
	h.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

func (h *Hub) publish(ctx context.Context, channel string, data interface{}) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, channel, data); err != nil && h.logger != nil {
		h.logger.Error(fmt.Sprintf("failed to publish update to channel %s: %v", channel, err))
	}
}
