package dialog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/model"
)

// ConversationStore keeps one participant's conversation list live for the
// whole signed-in lifetime. Every batch replaces and fully re-sorts the
// list; conversation counts per participant are small enough that an
// incremental merge buys nothing.
type ConversationStore struct {
	remote  RemoteStore
	manager *Manager
	logger  logger_lib.LoggerInterface

	mu            sync.RWMutex
	participantID string
	conversations model.ConversationList
	syncErr       *SyncError

	onUpdate func(model.ConversationList)
}

func NewConversationStore(remote RemoteStore, manager *Manager, logger logger_lib.LoggerInterface) *ConversationStore {
	return &ConversationStore{
		remote:  remote,
		manager: manager,
		logger:  logger,
	}
}

// OnUpdate registers a hook invoked with every freshly sorted list. Must be
// set before Start.
func (s *ConversationStore) OnUpdate(fn func(model.ConversationList)) {
	s.onUpdate = fn
}

// Start opens the conversation slot for participantID and keeps applying
// feed batches until the feed fails or the store is stopped.
func (s *ConversationStore) Start(ctx context.Context, participantID string) error {
	var feed ConversationFeed
	gen, err := s.manager.Open(SlotConversations, func() (func(), error) {
		f, err := s.remote.SubscribeConversations(ctx, participantID)
		if err != nil {
			return nil, fmt.Errorf("failed to subscribe to conversations: %w", err)
		}
		feed = f
		return f.Close, nil
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.participantID = participantID
	s.syncErr = nil
	s.mu.Unlock()

	go s.listen(feed, gen)

	return nil
}

func (s *ConversationStore) listen(feed ConversationFeed, gen uint64) {
	// every exit means this subscription is finished; detach the feed so
	// the remote store stops refreshing it
	defer feed.Close()

	for {
		select {
		case batch, ok := <-feed.Updates():
			if !ok {
				return
			}
			if !s.manager.Admit(SlotConversations, gen) {
				continue
			}
			s.apply(batch)
		case err, ok := <-feed.Err():
			if !ok {
				return
			}
			if !s.manager.Fail(SlotConversations, gen) {
				return
			}

			s.mu.Lock()
			s.syncErr = &SyncError{Scope: ScopeConversationList, Err: err}
			s.mu.Unlock()

			if s.logger != nil {
				s.logger.Error(fmt.Sprintf("conversation feed failed: %v", err))
			}
			return
		}
	}
}

func (s *ConversationStore) apply(batch model.ConversationList) {
	sorted := make(model.ConversationList, len(batch))
	copy(sorted, batch)
	SortConversations(sorted)

	s.mu.Lock()
	s.conversations = sorted
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(sorted)
	}
}

// SortConversations orders previews newest-first. A conversation that never
// received a message sorts after every one that did, newest created first
// among themselves.
func SortConversations(list model.ConversationList) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch {
		case a.LastMessage == nil && b.LastMessage == nil:
			return a.CreatedAt.After(b.CreatedAt)
		case a.LastMessage == nil:
			return false
		case b.LastMessage == nil:
			return true
		default:
			return a.LastMessage.SentAt.After(b.LastMessage.SentAt)
		}
	})
}

// Conversations returns a copy of the current sorted list. After a feed
// failure the last good list stays visible.
func (s *ConversationStore) Conversations() model.ConversationList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(model.ConversationList, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// ParticipantID returns the participant the store is synchronized for.
func (s *ConversationStore) ParticipantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.participantID
}

// Err returns the sticky sync error once the feed has failed, nil otherwise.
func (s *ConversationStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.syncErr == nil {
		return nil
	}
	return s.syncErr
}

// Stop tears the subscription down. Idempotent.
func (s *ConversationStore) Stop() {
	s.manager.Close(SlotConversations)
}
