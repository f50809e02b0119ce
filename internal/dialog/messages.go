package dialog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/model"
)

// MessageStream keeps the open conversation's messages live in
// chronological reading order, oldest first.
type MessageStream struct {
	remote  RemoteStore
	manager *Manager
	logger  logger_lib.LoggerInterface

	mu             sync.RWMutex
	conversationID string
	messages       model.MessageList
	syncErr        *SyncError

	onUpdate func(string, model.MessageList)
}

func NewMessageStream(remote RemoteStore, manager *Manager, logger logger_lib.LoggerInterface) *MessageStream {
	return &MessageStream{
		remote:  remote,
		manager: manager,
		logger:  logger,
	}
}

// OnUpdate registers a hook invoked with every freshly sorted buffer. Must
// be set before the first Open.
func (s *MessageStream) OnUpdate(fn func(string, model.MessageList)) {
	s.onUpdate = fn
}

// Open switches the stream to conversationID. The previous subscription is
// closed and the buffer cleared before the new feed is dialed, so a caller
// never observes the old conversation's messages under the new id. A
// delivery from the old subscription arriving after the switch is rejected
// by its stale generation.
func (s *MessageStream) Open(ctx context.Context, conversationID string) error {
	s.manager.Close(SlotMessages)

	s.mu.Lock()
	s.conversationID = conversationID
	s.messages = nil
	s.syncErr = nil
	s.mu.Unlock()

	var feed MessageFeed
	gen, err := s.manager.Open(SlotMessages, func() (func(), error) {
		f, err := s.remote.SubscribeMessages(ctx, conversationID)
		if err != nil {
			return nil, fmt.Errorf("failed to subscribe to messages: %w", err)
		}
		feed = f
		return f.Close, nil
	})
	if err != nil {
		return err
	}

	go s.listen(feed, gen, conversationID)

	return nil
}

func (s *MessageStream) listen(feed MessageFeed, gen uint64, conversationID string) {
	// every exit means this subscription is finished; detach the feed so
	// the remote store stops refreshing it
	defer feed.Close()

	for {
		select {
		case batch, ok := <-feed.Updates():
			if !ok {
				return
			}
			if !s.manager.Admit(SlotMessages, gen) {
				continue
			}
			s.apply(conversationID, batch)
		case err, ok := <-feed.Err():
			if !ok {
				return
			}
			if !s.manager.Fail(SlotMessages, gen) {
				return
			}

			s.mu.Lock()
			s.syncErr = &SyncError{Scope: ScopeMessageStream, Err: err}
			s.mu.Unlock()

			if s.logger != nil {
				s.logger.Error(fmt.Sprintf("message feed failed for conversation %s: %v", conversationID, err))
			}
			return
		}
	}
}

func (s *MessageStream) apply(conversationID string, batch model.MessageList) {
	sorted := make(model.MessageList, len(batch))
	copy(sorted, batch)
	SortMessages(sorted)

	s.mu.Lock()
	if s.conversationID != conversationID {
		// the stream switched while the batch was in transit
		s.mu.Unlock()
		return
	}
	s.messages = sorted
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(conversationID, sorted)
	}
}

// SortMessages orders a batch ascending by sent_at, message id as the
// tie-break for equal server timestamps.
func SortMessages(list model.MessageList) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].SentAt.Equal(list[j].SentAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].SentAt.Before(list[j].SentAt)
	})
}

// Messages returns a copy of the current buffer. After a feed failure the
// buffered history stays visible even though updates have stopped.
func (s *MessageStream) Messages() model.MessageList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(model.MessageList, len(s.messages))
	copy(out, s.messages)
	return out
}

// ConversationID returns the open conversation, or "" when none is open.
func (s *MessageStream) ConversationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversationID
}

// Err returns the sticky sync error once the feed has failed, nil otherwise.
func (s *MessageStream) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.syncErr == nil {
		return nil
	}
	return s.syncErr
}

// Close tears the subscription down and marks no conversation open.
// Idempotent.
func (s *MessageStream) Close() {
	s.manager.Close(SlotMessages)

	s.mu.Lock()
	s.conversationID = ""
	s.messages = nil
	s.syncErr = nil
	s.mu.Unlock()
}
