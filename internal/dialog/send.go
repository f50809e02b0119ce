package dialog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/model"
)

// Composer holds the participant's draft between keystrokes and send
// attempts. A failed send restores the draft verbatim so nothing typed is
// ever lost.
type Composer struct {
	mu    sync.Mutex
	draft string
}

func (c *Composer) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
}

func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Composer) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = ""
}

func (c *Composer) restore(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
}

// SendCoordinator performs the optimistic send protocol: clear the draft
// immediately, append durably with a store-assigned timestamp, then merge
// the conversation preview. The sent message is never injected into the
// local stream; it arrives back through the feed echo, which keeps the
// displayed order canonical.
type SendCoordinator struct {
	remote   RemoteStore
	composer *Composer
	logger   logger_lib.LoggerInterface
}

func NewSendCoordinator(remote RemoteStore, logger logger_lib.LoggerInterface) *SendCoordinator {
	return &SendCoordinator{
		remote:   remote,
		composer: &Composer{},
		logger:   logger,
	}
}

// Composer returns the coordinator's compose buffer.
func (sc *SendCoordinator) Composer() *Composer {
	return sc.composer
}

// Send validates locally, clears the draft, appends the message and merges
// the conversation preview. A validation failure never reaches the remote
// store. A failed append restores the draft and returns a SendError; a
// failed preview merge after a successful append is logged and swallowed,
// the record is durable and the preview heals on the next send.
func (sc *SendCoordinator) Send(ctx context.Context, conversationID, senderID, text string) error {
	trimmed := strings.TrimSpace(text)
	switch {
	case conversationID == "":
		return fmt.Errorf("%w: no conversation is open", ErrInvalidInput)
	case senderID == "":
		return fmt.Errorf("%w: sender is not authenticated", ErrInvalidInput)
	case trimmed == "":
		return fmt.Errorf("%w: message text is empty", ErrInvalidInput)
	}

	sc.composer.clear()

	message := &model.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           trimmed,
	}

	if err := sc.remote.SaveMessage(ctx, message); err != nil {
		sc.composer.restore(text)
		return &SendError{ConversationID: conversationID, Err: err}
	}

	preview := model.LastMessage{
		Text:   trimmed,
		SentAt: message.SentAt,
	}
	if err := sc.remote.SetLastMessage(ctx, conversationID, preview); err != nil {
		if sc.logger != nil {
			sc.logger.Warn(fmt.Sprintf("failed to update preview for conversation %s: %v", conversationID, err))
		}
	}

	return nil
}
